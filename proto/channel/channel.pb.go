// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: channel.proto

package channel

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type EventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EventsRequest) Reset() {
	*x = EventsRequest{}
	mi := &file_channel_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventsRequest) ProtoMessage() {}

func (x *EventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventsRequest.ProtoReflect.Descriptor instead.
func (*EventsRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{0}
}

type ChannelEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ChannelEvent_PairingCode
	//	*ChannelEvent_Authenticated
	//	*ChannelEvent_Ready
	//	*ChannelEvent_AuthFailure
	//	*ChannelEvent_Disconnected
	Event         isChannelEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChannelEvent) Reset() {
	*x = ChannelEvent{}
	mi := &file_channel_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChannelEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChannelEvent) ProtoMessage() {}

func (x *ChannelEvent) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChannelEvent.ProtoReflect.Descriptor instead.
func (*ChannelEvent) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{1}
}

func (x *ChannelEvent) GetEvent() isChannelEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ChannelEvent) GetPairingCode() *PairingCode {
	if x != nil {
		if x, ok := x.Event.(*ChannelEvent_PairingCode); ok {
			return x.PairingCode
		}
	}
	return nil
}

func (x *ChannelEvent) GetAuthenticated() *Authenticated {
	if x != nil {
		if x, ok := x.Event.(*ChannelEvent_Authenticated); ok {
			return x.Authenticated
		}
	}
	return nil
}

func (x *ChannelEvent) GetReady() *Ready {
	if x != nil {
		if x, ok := x.Event.(*ChannelEvent_Ready); ok {
			return x.Ready
		}
	}
	return nil
}

func (x *ChannelEvent) GetAuthFailure() *AuthFailure {
	if x != nil {
		if x, ok := x.Event.(*ChannelEvent_AuthFailure); ok {
			return x.AuthFailure
		}
	}
	return nil
}

func (x *ChannelEvent) GetDisconnected() *Disconnected {
	if x != nil {
		if x, ok := x.Event.(*ChannelEvent_Disconnected); ok {
			return x.Disconnected
		}
	}
	return nil
}

type isChannelEvent_Event interface {
	isChannelEvent_Event()
}

type ChannelEvent_PairingCode struct {
	PairingCode *PairingCode `protobuf:"bytes,1,opt,name=pairing_code,json=pairingCode,proto3,oneof"`
}

type ChannelEvent_Authenticated struct {
	Authenticated *Authenticated `protobuf:"bytes,2,opt,name=authenticated,proto3,oneof"`
}

type ChannelEvent_Ready struct {
	Ready *Ready `protobuf:"bytes,3,opt,name=ready,proto3,oneof"`
}

type ChannelEvent_AuthFailure struct {
	AuthFailure *AuthFailure `protobuf:"bytes,4,opt,name=auth_failure,json=authFailure,proto3,oneof"`
}

type ChannelEvent_Disconnected struct {
	Disconnected *Disconnected `protobuf:"bytes,5,opt,name=disconnected,proto3,oneof"`
}

func (*ChannelEvent_PairingCode) isChannelEvent_Event() {}

func (*ChannelEvent_Authenticated) isChannelEvent_Event() {}

func (*ChannelEvent_Ready) isChannelEvent_Event() {}

func (*ChannelEvent_AuthFailure) isChannelEvent_Event() {}

func (*ChannelEvent_Disconnected) isChannelEvent_Event() {}

type PairingCode struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PairingCode) Reset() {
	*x = PairingCode{}
	mi := &file_channel_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PairingCode) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PairingCode) ProtoMessage() {}

func (x *PairingCode) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PairingCode.ProtoReflect.Descriptor instead.
func (*PairingCode) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{2}
}

func (x *PairingCode) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type Authenticated struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Authenticated) Reset() {
	*x = Authenticated{}
	mi := &file_channel_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Authenticated) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Authenticated) ProtoMessage() {}

func (x *Authenticated) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Authenticated.ProtoReflect.Descriptor instead.
func (*Authenticated) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{3}
}

type Ready struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Self          *Identity              `protobuf:"bytes,1,opt,name=self,proto3" json:"self,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ready) Reset() {
	*x = Ready{}
	mi := &file_channel_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ready) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ready) ProtoMessage() {}

func (x *Ready) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ready.ProtoReflect.Descriptor instead.
func (*Ready) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{4}
}

func (x *Ready) GetSelf() *Identity {
	if x != nil {
		return x.Self
	}
	return nil
}

type AuthFailure struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuthFailure) Reset() {
	*x = AuthFailure{}
	mi := &file_channel_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuthFailure) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthFailure) ProtoMessage() {}

func (x *AuthFailure) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthFailure.ProtoReflect.Descriptor instead.
func (*AuthFailure) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{5}
}

func (x *AuthFailure) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type Disconnected struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Disconnected) Reset() {
	*x = Disconnected{}
	mi := &file_channel_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Disconnected) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Disconnected) ProtoMessage() {}

func (x *Disconnected) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Disconnected.ProtoReflect.Descriptor instead.
func (*Disconnected) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{6}
}

func (x *Disconnected) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type SelfRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelfRequest) Reset() {
	*x = SelfRequest{}
	mi := &file_channel_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelfRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelfRequest) ProtoMessage() {}

func (x *SelfRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelfRequest.ProtoReflect.Descriptor instead.
func (*SelfRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{7}
}

type Identity struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Number        string                 `protobuf:"bytes,2,opt,name=number,proto3" json:"number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Identity) Reset() {
	*x = Identity{}
	mi := &file_channel_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Identity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Identity) ProtoMessage() {}

func (x *Identity) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Identity.ProtoReflect.Descriptor instead.
func (*Identity) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{8}
}

func (x *Identity) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Identity) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

type ResolveInviteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveInviteRequest) Reset() {
	*x = ResolveInviteRequest{}
	mi := &file_channel_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveInviteRequest) ProtoMessage() {}

func (x *ResolveInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveInviteRequest.ProtoReflect.Descriptor instead.
func (*ResolveInviteRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{9}
}

func (x *ResolveInviteRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type InviteInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"`
	Participants  []*Participant         `protobuf:"bytes,3,rep,name=participants,proto3" json:"participants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InviteInfo) Reset() {
	*x = InviteInfo{}
	mi := &file_channel_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InviteInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InviteInfo) ProtoMessage() {}

func (x *InviteInfo) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InviteInfo.ProtoReflect.Descriptor instead.
func (*InviteInfo) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{10}
}

func (x *InviteInfo) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *InviteInfo) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *InviteInfo) GetParticipants() []*Participant {
	if x != nil {
		return x.Participants
	}
	return nil
}

type GetGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetGroupRequest) Reset() {
	*x = GetGroupRequest{}
	mi := &file_channel_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetGroupRequest) ProtoMessage() {}

func (x *GetGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetGroupRequest.ProtoReflect.Descriptor instead.
func (*GetGroupRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{11}
}

func (x *GetGroupRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

type GroupRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	IsGroup       bool                   `protobuf:"varint,3,opt,name=is_group,json=isGroup,proto3" json:"is_group,omitempty"`
	Participants  []*Participant         `protobuf:"bytes,4,rep,name=participants,proto3" json:"participants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupRecord) Reset() {
	*x = GroupRecord{}
	mi := &file_channel_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupRecord) ProtoMessage() {}

func (x *GroupRecord) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupRecord.ProtoReflect.Descriptor instead.
func (*GroupRecord) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{12}
}

func (x *GroupRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GroupRecord) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *GroupRecord) GetIsGroup() bool {
	if x != nil {
		return x.IsGroup
	}
	return false
}

func (x *GroupRecord) GetParticipants() []*Participant {
	if x != nil {
		return x.Participants
	}
	return nil
}

type Participant struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RawNumber     string                 `protobuf:"bytes,2,opt,name=raw_number,json=rawNumber,proto3" json:"raw_number,omitempty"`
	IsAdmin       bool                   `protobuf:"varint,3,opt,name=is_admin,json=isAdmin,proto3" json:"is_admin,omitempty"`
	IsSuperAdmin  bool                   `protobuf:"varint,4,opt,name=is_super_admin,json=isSuperAdmin,proto3" json:"is_super_admin,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Participant) Reset() {
	*x = Participant{}
	mi := &file_channel_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Participant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Participant) ProtoMessage() {}

func (x *Participant) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Participant.ProtoReflect.Descriptor instead.
func (*Participant) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{13}
}

func (x *Participant) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Participant) GetRawNumber() string {
	if x != nil {
		return x.RawNumber
	}
	return ""
}

func (x *Participant) GetIsAdmin() bool {
	if x != nil {
		return x.IsAdmin
	}
	return false
}

func (x *Participant) GetIsSuperAdmin() bool {
	if x != nil {
		return x.IsSuperAdmin
	}
	return false
}

type SyncHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	MessageLimit  int32                  `protobuf:"varint,2,opt,name=message_limit,json=messageLimit,proto3" json:"message_limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncHistoryRequest) Reset() {
	*x = SyncHistoryRequest{}
	mi := &file_channel_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncHistoryRequest) ProtoMessage() {}

func (x *SyncHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncHistoryRequest.ProtoReflect.Descriptor instead.
func (*SyncHistoryRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{14}
}

func (x *SyncHistoryRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *SyncHistoryRequest) GetMessageLimit() int32 {
	if x != nil {
		return x.MessageLimit
	}
	return 0
}

type SyncHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncHistoryResponse) Reset() {
	*x = SyncHistoryResponse{}
	mi := &file_channel_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncHistoryResponse) ProtoMessage() {}

func (x *SyncHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncHistoryResponse.ProtoReflect.Descriptor instead.
func (*SyncHistoryResponse) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{15}
}

type ResolveNumberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        string                 `protobuf:"bytes,1,opt,name=number,proto3" json:"number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveNumberRequest) Reset() {
	*x = ResolveNumberRequest{}
	mi := &file_channel_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveNumberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveNumberRequest) ProtoMessage() {}

func (x *ResolveNumberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveNumberRequest.ProtoReflect.Descriptor instead.
func (*ResolveNumberRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{16}
}

func (x *ResolveNumberRequest) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

type LogoutRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogoutRequest) Reset() {
	*x = LogoutRequest{}
	mi := &file_channel_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogoutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogoutRequest) ProtoMessage() {}

func (x *LogoutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogoutRequest.ProtoReflect.Descriptor instead.
func (*LogoutRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{17}
}

type LogoutResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogoutResponse) Reset() {
	*x = LogoutResponse{}
	mi := &file_channel_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogoutResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogoutResponse) ProtoMessage() {}

func (x *LogoutResponse) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogoutResponse.ProtoReflect.Descriptor instead.
func (*LogoutResponse) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{18}
}

type ShutdownRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShutdownRequest) Reset() {
	*x = ShutdownRequest{}
	mi := &file_channel_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShutdownRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShutdownRequest) ProtoMessage() {}

func (x *ShutdownRequest) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShutdownRequest.ProtoReflect.Descriptor instead.
func (*ShutdownRequest) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{19}
}

type ShutdownResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShutdownResponse) Reset() {
	*x = ShutdownResponse{}
	mi := &file_channel_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShutdownResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShutdownResponse) ProtoMessage() {}

func (x *ShutdownResponse) ProtoReflect() protoreflect.Message {
	mi := &file_channel_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShutdownResponse.ProtoReflect.Descriptor instead.
func (*ShutdownResponse) Descriptor() ([]byte, []int) {
	return file_channel_proto_rawDescGZIP(), []int{20}
}

var File_channel_proto protoreflect.FileDescriptor

const file_channel_proto_rawDesc = "" +
	"\n" +
	"\rchannel.proto\x12\achannel\"\x0f\n" +
	"\rEventsRequest\"\xb2\x02\n" +
	"\fChannelEvent\x129\n" +
	"\fpairing_code\x18\x01 \x01(\v2\x14.channel.PairingCodeH\x00R\vpairingCode\x12>\n" +
	"\rauthenticated\x18\x02 \x01(\v2\x16.channel.AuthenticatedH\x00R\rauthenticated\x12&\n" +
	"\x05ready\x18\x03 \x01(\v2\x0e.channel.ReadyH\x00R\x05ready\x129\n" +
	"\fauth_failure\x18\x04 \x01(\v2\x14.channel.AuthFailureH\x00R\vauthFailure\x12;\n" +
	"\fdisconnected\x18\x05 \x01(\v2\x15.channel.DisconnectedH\x00R\fdisconnectedB\a\n" +
	"\x05event\"!\n" +
	"\vPairingCode\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\"\x0f\n" +
	"\rAuthenticated\".\n" +
	"\x05Ready\x12%\n" +
	"\x04self\x18\x01 \x01(\v2\x11.channel.IdentityR\x04self\"%\n" +
	"\vAuthFailure\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"&\n" +
	"\fDisconnected\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"\r\n" +
	"\vSelfRequest\"2\n" +
	"\bIdentity\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06number\x18\x02 \x01(\tR\x06number\"*\n" +
	"\x14ResolveInviteRequest\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\"{\n" +
	"\n" +
	"InviteInfo\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\x128\n" +
	"\fparticipants\x18\x03 \x03(\v2\x14.channel.ParticipantR\fparticipants\",\n" +
	"\x0fGetGroupRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\"\x86\x01\n" +
	"\vGroupRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x19\n" +
	"\bis_group\x18\x03 \x01(\bR\aisGroup\x128\n" +
	"\fparticipants\x18\x04 \x03(\v2\x14.channel.ParticipantR\fparticipants\"}\n" +
	"\vParticipant\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"raw_number\x18\x02 \x01(\tR\trawNumber\x12\x19\n" +
	"\bis_admin\x18\x03 \x01(\bR\aisAdmin\x12$\n" +
	"\x0eis_super_admin\x18\x04 \x01(\bR\fisSuperAdmin\"T\n" +
	"\x12SyncHistoryRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12#\n" +
	"\rmessage_limit\x18\x02 \x01(\x05R\fmessageLimit\"\x15\n" +
	"\x13SyncHistoryResponse\".\n" +
	"\x14ResolveNumberRequest\x12\x16\n" +
	"\x06number\x18\x01 \x01(\tR\x06number\"\x0f\n" +
	"\rLogoutRequest\"\x10\n" +
	"\x0eLogoutResponse\"\x11\n" +
	"\x0fShutdownRequest\"\x12\n" +
	"\x10ShutdownResponse2\x89\x04\n" +
	"\x11AutomationChannel\x129\n" +
	"\x06Events\x12\x16.channel.EventsRequest\x1a\x15.channel.ChannelEvent0\x01\x12/\n" +
	"\x04Self\x12\x14.channel.SelfRequest\x1a\x11.channel.Identity\x12C\n" +
	"\rResolveInvite\x12\x1d.channel.ResolveInviteRequest\x1a\x13.channel.InviteInfo\x12:\n" +
	"\bGetGroup\x12\x18.channel.GetGroupRequest\x1a\x14.channel.GroupRecord\x12H\n" +
	"\vSyncHistory\x12\x1b.channel.SyncHistoryRequest\x1a\x1c.channel.SyncHistoryResponse\x12A\n" +
	"\rResolveNumber\x12\x1d.channel.ResolveNumberRequest\x1a\x11.channel.Identity\x129\n" +
	"\x06Logout\x12\x16.channel.LogoutRequest\x1a\x17.channel.LogoutResponse\x12?\n" +
	"\bShutdown\x12\x18.channel.ShutdownRequest\x1a\x19.channel.ShutdownResponseB\x19Z\x17grouplink/proto/channelb\x06proto3"

var (
	file_channel_proto_rawDescOnce sync.Once
	file_channel_proto_rawDescData []byte
)

func file_channel_proto_rawDescGZIP() []byte {
	file_channel_proto_rawDescOnce.Do(func() {
		file_channel_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_channel_proto_rawDesc), len(file_channel_proto_rawDesc)))
	})
	return file_channel_proto_rawDescData
}

var file_channel_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_channel_proto_goTypes = []any{
	(*EventsRequest)(nil),        // 0: channel.EventsRequest
	(*ChannelEvent)(nil),         // 1: channel.ChannelEvent
	(*PairingCode)(nil),          // 2: channel.PairingCode
	(*Authenticated)(nil),        // 3: channel.Authenticated
	(*Ready)(nil),                // 4: channel.Ready
	(*AuthFailure)(nil),          // 5: channel.AuthFailure
	(*Disconnected)(nil),         // 6: channel.Disconnected
	(*SelfRequest)(nil),          // 7: channel.SelfRequest
	(*Identity)(nil),             // 8: channel.Identity
	(*ResolveInviteRequest)(nil), // 9: channel.ResolveInviteRequest
	(*InviteInfo)(nil),           // 10: channel.InviteInfo
	(*GetGroupRequest)(nil),      // 11: channel.GetGroupRequest
	(*GroupRecord)(nil),          // 12: channel.GroupRecord
	(*Participant)(nil),          // 13: channel.Participant
	(*SyncHistoryRequest)(nil),   // 14: channel.SyncHistoryRequest
	(*SyncHistoryResponse)(nil),  // 15: channel.SyncHistoryResponse
	(*ResolveNumberRequest)(nil), // 16: channel.ResolveNumberRequest
	(*LogoutRequest)(nil),        // 17: channel.LogoutRequest
	(*LogoutResponse)(nil),       // 18: channel.LogoutResponse
	(*ShutdownRequest)(nil),      // 19: channel.ShutdownRequest
	(*ShutdownResponse)(nil),     // 20: channel.ShutdownResponse
}
var file_channel_proto_depIdxs = []int32{
	2,  // 0: channel.ChannelEvent.pairing_code:type_name -> channel.PairingCode
	3,  // 1: channel.ChannelEvent.authenticated:type_name -> channel.Authenticated
	4,  // 2: channel.ChannelEvent.ready:type_name -> channel.Ready
	5,  // 3: channel.ChannelEvent.auth_failure:type_name -> channel.AuthFailure
	6,  // 4: channel.ChannelEvent.disconnected:type_name -> channel.Disconnected
	8,  // 5: channel.Ready.self:type_name -> channel.Identity
	13, // 6: channel.InviteInfo.participants:type_name -> channel.Participant
	13, // 7: channel.GroupRecord.participants:type_name -> channel.Participant
	0,  // 8: channel.AutomationChannel.Events:input_type -> channel.EventsRequest
	7,  // 9: channel.AutomationChannel.Self:input_type -> channel.SelfRequest
	9,  // 10: channel.AutomationChannel.ResolveInvite:input_type -> channel.ResolveInviteRequest
	11, // 11: channel.AutomationChannel.GetGroup:input_type -> channel.GetGroupRequest
	14, // 12: channel.AutomationChannel.SyncHistory:input_type -> channel.SyncHistoryRequest
	16, // 13: channel.AutomationChannel.ResolveNumber:input_type -> channel.ResolveNumberRequest
	17, // 14: channel.AutomationChannel.Logout:input_type -> channel.LogoutRequest
	19, // 15: channel.AutomationChannel.Shutdown:input_type -> channel.ShutdownRequest
	1,  // 16: channel.AutomationChannel.Events:output_type -> channel.ChannelEvent
	8,  // 17: channel.AutomationChannel.Self:output_type -> channel.Identity
	10, // 18: channel.AutomationChannel.ResolveInvite:output_type -> channel.InviteInfo
	12, // 19: channel.AutomationChannel.GetGroup:output_type -> channel.GroupRecord
	15, // 20: channel.AutomationChannel.SyncHistory:output_type -> channel.SyncHistoryResponse
	8,  // 21: channel.AutomationChannel.ResolveNumber:output_type -> channel.Identity
	18, // 22: channel.AutomationChannel.Logout:output_type -> channel.LogoutResponse
	20, // 23: channel.AutomationChannel.Shutdown:output_type -> channel.ShutdownResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_channel_proto_init() }
func file_channel_proto_init() {
	if File_channel_proto != nil {
		return
	}
	file_channel_proto_msgTypes[1].OneofWrappers = []any{
		(*ChannelEvent_PairingCode)(nil),
		(*ChannelEvent_Authenticated)(nil),
		(*ChannelEvent_Ready)(nil),
		(*ChannelEvent_AuthFailure)(nil),
		(*ChannelEvent_Disconnected)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_channel_proto_rawDesc), len(file_channel_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_channel_proto_goTypes,
		DependencyIndexes: file_channel_proto_depIdxs,
		MessageInfos:      file_channel_proto_msgTypes,
	}.Build()
	File_channel_proto = out.File
	file_channel_proto_goTypes = nil
	file_channel_proto_depIdxs = nil
}
