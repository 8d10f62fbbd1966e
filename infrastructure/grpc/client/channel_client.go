package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"grouplink/domain"
	"grouplink/errors"
	pb "grouplink/proto/channel"

	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ChannelClient adapts the sidecar's gRPC surface to the domain port. One
// instance per paired session; the session service owns its lifecycle.
type ChannelClient struct {
	client pb.AutomationChannelClient
	events chan domain.ChannelEvent
	log    *slog.Logger
	stop   context.CancelFunc
}

// NewChannelClient opens the event stream and starts pumping it into the
// domain channel. The returned client is live until Close.
func NewChannelClient(ctx context.Context, log *slog.Logger,
	client pb.AutomationChannelClient) (*ChannelClient, error) {
	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stream, err := client.Events(streamCtx, &pb.EventsRequest{})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: opening event stream: %v", errors.ErrSidecarUnavailable, err)
	}

	c := &ChannelClient{
		client: client,
		events: make(chan domain.ChannelEvent, 16),
		log:    log,
		stop:   cancel,
	}
	go c.pump(stream)
	return c, nil
}

// pump translates the pb event stream until it ends, then closes the domain
// channel so the session service observes the loss.
func (c *ChannelClient) pump(stream pb.AutomationChannel_EventsClient) {
	defer close(c.events)

	for {
		msg, err := stream.Recv()
		if err != nil {
			if err != io.EOF && status.Code(err) != codes.Canceled {
				c.log.Warn("Event stream broke", "err", err)
				c.events <- domain.DisconnectedEvent{Reason: err.Error()}
			}
			return
		}

		if evt := toDomainEvent(msg); evt != nil {
			c.events <- evt
		}
	}
}

func toDomainEvent(msg *pb.ChannelEvent) domain.ChannelEvent {
	switch e := msg.Event.(type) {
	case *pb.ChannelEvent_PairingCode:
		return domain.PairingCodeProduced{Code: e.PairingCode.Code}
	case *pb.ChannelEvent_Authenticated:
		return domain.AuthenticatedEvent{}
	case *pb.ChannelEvent_Ready:
		return domain.ReadyEvent{Self: toIdentity(e.Ready.Self)}
	case *pb.ChannelEvent_AuthFailure:
		return domain.AuthFailureEvent{Reason: e.AuthFailure.Reason}
	case *pb.ChannelEvent_Disconnected:
		return domain.DisconnectedEvent{Reason: e.Disconnected.Reason}
	default:
		return nil
	}
}

func (c *ChannelClient) Self(ctx context.Context) (domain.Identity, error) {
	resp, err := c.client.Self(ctx, &pb.SelfRequest{})
	if err != nil {
		return domain.Identity{}, wrapChannelErr(err)
	}
	return toIdentity(resp), nil
}

func (c *ChannelClient) ResolveInvite(ctx context.Context, code string) (domain.InviteInfo, error) {
	resp, err := c.client.ResolveInvite(ctx, &pb.ResolveInviteRequest{Code: code})
	if err != nil {
		return domain.InviteInfo{}, wrapChannelErr(err)
	}
	return domain.InviteInfo{
		GroupID:      resp.GroupId,
		Subject:      resp.Subject,
		Participants: toParticipants(resp.Participants),
	}, nil
}

func (c *ChannelClient) Group(ctx context.Context, groupID string) (domain.GroupRecord, error) {
	resp, err := c.client.GetGroup(ctx, &pb.GetGroupRequest{GroupId: groupID})
	if err != nil {
		return domain.GroupRecord{}, wrapChannelErr(err)
	}
	return domain.GroupRecord{
		ID:           resp.Id,
		Name:         resp.Name,
		IsGroup:      resp.IsGroup,
		Participants: toParticipants(resp.Participants),
	}, nil
}

func (c *ChannelClient) SyncHistory(ctx context.Context, groupID string, limit int) error {
	_, err := c.client.SyncHistory(ctx, &pb.SyncHistoryRequest{
		GroupId:      groupID,
		MessageLimit: int32(limit),
	})
	return wrapChannelErr(err)
}

func (c *ChannelClient) ResolveNumber(ctx context.Context, number string) (domain.Identity, error) {
	resp, err := c.client.ResolveNumber(ctx, &pb.ResolveNumberRequest{Number: number})
	if err != nil {
		return domain.Identity{}, wrapChannelErr(err)
	}
	return toIdentity(resp), nil
}

func (c *ChannelClient) Events() <-chan domain.ChannelEvent {
	return c.events
}

func (c *ChannelClient) Logout(ctx context.Context) error {
	_, err := c.client.Logout(ctx, &pb.LogoutRequest{})
	return wrapChannelErr(err)
}

// Close asks the sidecar to shut down and tears the event stream down. The
// launcher reaps the process afterwards.
func (c *ChannelClient) Close(ctx context.Context) error {
	defer c.stop()
	_, err := c.client.Shutdown(ctx, &pb.ShutdownRequest{})
	return wrapChannelErr(err)
}

// wrapChannelErr marks infrastructure-level failures as transient so the
// resolver's retry loop can distinguish them from domain rejections.
func wrapChannelErr(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted:
		return fmt.Errorf("%w: %v", errors.ErrChannelTransient, err)
	default:
		return err
	}
}

func toIdentity(id *pb.Identity) domain.Identity {
	if id == nil {
		return domain.Identity{}
	}
	return domain.Identity{ID: id.Id, Number: id.Number}
}

func toParticipants(participants []*pb.Participant) []domain.Participant {
	return lo.Map(participants, func(item *pb.Participant, _ int) domain.Participant {
		return domain.Participant{
			ID:           item.Id,
			RawNumber:    item.RawNumber,
			IsAdmin:      item.IsAdmin,
			IsSuperAdmin: item.IsSuperAdmin,
		}
	})
}
