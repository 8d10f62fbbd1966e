// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: connect.proto

package connect

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

type StartSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionRequest) Reset() {
	*x = StartSessionRequest{}
	mi := &file_connect_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionRequest) ProtoMessage() {}

func (x *StartSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionRequest.ProtoReflect.Descriptor instead.
func (*StartSessionRequest) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{0}
}

type StartSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         string                 `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionResponse) Reset() {
	*x = StartSessionResponse{}
	mi := &file_connect_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionResponse) ProtoMessage() {}

func (x *StartSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionResponse.ProtoReflect.Descriptor instead.
func (*StartSessionResponse) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{1}
}

func (x *StartSessionResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

type GetStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusRequest) Reset() {
	*x = GetStatusRequest{}
	mi := &file_connect_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusRequest) ProtoMessage() {}

func (x *GetStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusRequest.ProtoReflect.Descriptor instead.
func (*GetStatusRequest) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{2}
}

type GetStatusResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One of IDLE, INITIALIZING, QR_READY, AUTHENTICATED, READY, DISCONNECTED.
	State string `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	// Data URL of the pairing artifact, only set while state is QR_READY.
	PairingArtifact string `protobuf:"bytes,2,opt,name=pairing_artifact,json=pairingArtifact,proto3" json:"pairing_artifact,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetStatusResponse) Reset() {
	*x = GetStatusResponse{}
	mi := &file_connect_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusResponse) ProtoMessage() {}

func (x *GetStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusResponse.ProtoReflect.Descriptor instead.
func (*GetStatusResponse) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{3}
}

func (x *GetStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *GetStatusResponse) GetPairingArtifact() string {
	if x != nil {
		return x.PairingArtifact
	}
	return ""
}

type ResolveInviteRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Full shareable link or bare invite code.
	InviteRef     string `protobuf:"bytes,1,opt,name=invite_ref,json=inviteRef,proto3" json:"invite_ref,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveInviteRequest) Reset() {
	*x = ResolveInviteRequest{}
	mi := &file_connect_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveInviteRequest) ProtoMessage() {}

func (x *ResolveInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[4]
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
	return file_connect_proto_rawDescGZIP(), []int{4}
}

func (x *ResolveInviteRequest) GetInviteRef() string {
	if x != nil {
		return x.InviteRef
	}
	return ""
}

type ResolveInviteResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	GroupId             string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	DisplayName         string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	MemberCount         int32                  `protobuf:"varint,3,opt,name=member_count,json=memberCount,proto3" json:"member_count,omitempty"`
	ResolvedViaFastPath bool                   `protobuf:"varint,4,opt,name=resolved_via_fast_path,json=resolvedViaFastPath,proto3" json:"resolved_via_fast_path,omitempty"`
	Participants        []*GroupParticipant    `protobuf:"bytes,5,rep,name=participants,proto3" json:"participants,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ResolveInviteResponse) Reset() {
	*x = ResolveInviteResponse{}
	mi := &file_connect_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveInviteResponse) ProtoMessage() {}

func (x *ResolveInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveInviteResponse.ProtoReflect.Descriptor instead.
func (*ResolveInviteResponse) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{5}
}

func (x *ResolveInviteResponse) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *ResolveInviteResponse) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *ResolveInviteResponse) GetMemberCount() int32 {
	if x != nil {
		return x.MemberCount
	}
	return 0
}

func (x *ResolveInviteResponse) GetResolvedViaFastPath() bool {
	if x != nil {
		return x.ResolvedViaFastPath
	}
	return false
}

func (x *ResolveInviteResponse) GetParticipants() []*GroupParticipant {
	if x != nil {
		return x.Participants
	}
	return nil
}

type GroupParticipant struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Number        string                 `protobuf:"bytes,2,opt,name=number,proto3" json:"number,omitempty"`
	IsAdmin       bool                   `protobuf:"varint,3,opt,name=is_admin,json=isAdmin,proto3" json:"is_admin,omitempty"`
	IsSuperAdmin  bool                   `protobuf:"varint,4,opt,name=is_super_admin,json=isSuperAdmin,proto3" json:"is_super_admin,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupParticipant) Reset() {
	*x = GroupParticipant{}
	mi := &file_connect_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupParticipant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupParticipant) ProtoMessage() {}

func (x *GroupParticipant) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupParticipant.ProtoReflect.Descriptor instead.
func (*GroupParticipant) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{6}
}

func (x *GroupParticipant) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GroupParticipant) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

func (x *GroupParticipant) GetIsAdmin() bool {
	if x != nil {
		return x.IsAdmin
	}
	return false
}

func (x *GroupParticipant) GetIsSuperAdmin() bool {
	if x != nil {
		return x.IsSuperAdmin
	}
	return false
}

type StopSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopSessionRequest) Reset() {
	*x = StopSessionRequest{}
	mi := &file_connect_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopSessionRequest) ProtoMessage() {}

func (x *StopSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopSessionRequest.ProtoReflect.Descriptor instead.
func (*StopSessionRequest) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{7}
}

type StopSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         string                 `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopSessionResponse) Reset() {
	*x = StopSessionResponse{}
	mi := &file_connect_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopSessionResponse) ProtoMessage() {}

func (x *StopSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_connect_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopSessionResponse.ProtoReflect.Descriptor instead.
func (*StopSessionResponse) Descriptor() ([]byte, []int) {
	return file_connect_proto_rawDescGZIP(), []int{8}
}

func (x *StopSessionResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

var File_connect_proto protoreflect.FileDescriptor

const file_connect_proto_rawDesc = "" +
	"\n" +
	"\rconnect.proto\x12\aconnect\"\x15\n" +
	"\x13StartSessionRequest\",\n" +
	"\x14StartSessionResponse\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\"\x12\n" +
	"\x10GetStatusRequest\"T\n" +
	"\x11GetStatusResponse\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\x12)\n" +
	"\x10pairing_artifact\x18\x02 \x01(\tR\x0fpairingArtifact\"5\n" +
	"\x14ResolveInviteRequest\x12\x1d\n" +
	"\n" +
	"invite_ref\x18\x01 \x01(\tR\tinviteRef\"\xec\x01\n" +
	"\x15ResolveInviteResponse\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12!\n" +
	"\fmember_count\x18\x03 \x01(\x05R\vmemberCount\x123\n" +
	"\x16resolved_via_fast_path\x18\x04 \x01(\bR\x13resolvedViaFastPath\x12=\n" +
	"\fparticipants\x18\x05 \x03(\v2\x19.connect.GroupParticipantR\fparticipants\"{\n" +
	"\x10GroupParticipant\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06number\x18\x02 \x01(\tR\x06number\x12\x19\n" +
	"\bis_admin\x18\x03 \x01(\bR\aisAdmin\x12$\n" +
	"\x0eis_super_admin\x18\x04 \x01(\bR\fisSuperAdmin\"\x14\n" +
	"\x12StopSessionRequest\"+\n" +
	"\x13StopSessionResponse\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state2\xbb\x02\n" +
	"\x0eConnectService\x12K\n" +
	"\fStartSession\x12\x1c.connect.StartSessionRequest\x1a\x1d.connect.StartSessionResponse\x12B\n" +
	"\tGetStatus\x12\x19.connect.GetStatusRequest\x1a\x1a.connect.GetStatusResponse\x12N\n" +
	"\rResolveInvite\x12\x1d.connect.ResolveInviteRequest\x1a\x1e.connect.ResolveInviteResponse\x12H\n" +
	"\vStopSession\x12\x1b.connect.StopSessionRequest\x1a\x1c.connect.StopSessionResponseB\x19Z\x17grouplink/proto/connectb\x06proto3"

var (
	file_connect_proto_rawDescOnce sync.Once
	file_connect_proto_rawDescData []byte
)

func file_connect_proto_rawDescGZIP() []byte {
	file_connect_proto_rawDescOnce.Do(func() {
		file_connect_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_connect_proto_rawDesc), len(file_connect_proto_rawDesc)))
	})
	return file_connect_proto_rawDescData
}

var file_connect_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_connect_proto_goTypes = []any{
	(*StartSessionRequest)(nil),   // 0: connect.StartSessionRequest
	(*StartSessionResponse)(nil),  // 1: connect.StartSessionResponse
	(*GetStatusRequest)(nil),      // 2: connect.GetStatusRequest
	(*GetStatusResponse)(nil),     // 3: connect.GetStatusResponse
	(*ResolveInviteRequest)(nil),  // 4: connect.ResolveInviteRequest
	(*ResolveInviteResponse)(nil), // 5: connect.ResolveInviteResponse
	(*GroupParticipant)(nil),      // 6: connect.GroupParticipant
	(*StopSessionRequest)(nil),    // 7: connect.StopSessionRequest
	(*StopSessionResponse)(nil),   // 8: connect.StopSessionResponse
}
var file_connect_proto_depIdxs = []int32{
	6, // 0: connect.ResolveInviteResponse.participants:type_name -> connect.GroupParticipant
	0, // 1: connect.ConnectService.StartSession:input_type -> connect.StartSessionRequest
	2, // 2: connect.ConnectService.GetStatus:input_type -> connect.GetStatusRequest
	4, // 3: connect.ConnectService.ResolveInvite:input_type -> connect.ResolveInviteRequest
	7, // 4: connect.ConnectService.StopSession:input_type -> connect.StopSessionRequest
	1, // 5: connect.ConnectService.StartSession:output_type -> connect.StartSessionResponse
	3, // 6: connect.ConnectService.GetStatus:output_type -> connect.GetStatusResponse
	5, // 7: connect.ConnectService.ResolveInvite:output_type -> connect.ResolveInviteResponse
	8, // 8: connect.ConnectService.StopSession:output_type -> connect.StopSessionResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_connect_proto_init() }
func file_connect_proto_init() {
	if File_connect_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_connect_proto_rawDesc), len(file_connect_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_connect_proto_goTypes,
		DependencyIndexes: file_connect_proto_depIdxs,
		MessageInfos:      file_connect_proto_msgTypes,
	}.Build()
	File_connect_proto = out.File
	file_connect_proto_goTypes = nil
	file_connect_proto_depIdxs = nil
}
