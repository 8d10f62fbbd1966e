package server

import (
	"context"
	"fmt"
	"log/slog"

	"grouplink/auth"
	"grouplink/domain"
	"grouplink/domain/connect"
	"grouplink/errors"
	pb "grouplink/proto/connect"
	"grouplink/services"

	"github.com/samber/lo"
)

type ConnectServer struct {
	pb.UnimplementedConnectServiceServer
	sessions services.ISessionService
	resolver services.IGroupResolver
	log      *slog.Logger
}

func NewConnectServer(log *slog.Logger, sessions services.ISessionService,
	resolver services.IGroupResolver) *ConnectServer {
	return &ConnectServer{sessions: sessions, resolver: resolver, log: log}
}

func (s *ConnectServer) StartSession(ctx context.Context, _ *pb.StartSessionRequest) (*pb.StartSessionResponse, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrUserNotFound)
	}

	cmd := connect.StartSessionCommand{UserID: userID}
	if err := cmd.Validate(); err != nil {
		return nil, errors.MapToGRPCError(fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
	}

	state, err := s.sessions.Start(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.StartSessionResponse{State: string(state)}, nil
}

// GetStatus is the polling surface: clients call it repeatedly while pairing
// to pick up the artifact and watch the state advance.
func (s *ConnectServer) GetStatus(_ context.Context, _ *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	status := s.sessions.Status()
	return &pb.GetStatusResponse{
		State:           string(status.State),
		PairingArtifact: status.PairingArtifact,
	}, nil
}

func (s *ConnectServer) ResolveInvite(ctx context.Context, req *pb.ResolveInviteRequest) (*pb.ResolveInviteResponse, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrUserNotFound)
	}

	snap, err := s.resolver.ResolveInvite(ctx, connect.ResolveInviteCommand{
		UserID:    userID,
		InviteRef: req.InviteRef,
	})
	if err != nil {
		s.log.Warn("Invite resolution rejected", "user_id", userID, "err", err)
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.ResolveInviteResponse{
		GroupId:             snap.GroupID,
		DisplayName:         snap.DisplayName,
		MemberCount:         int32(snap.MemberCount()),
		ResolvedViaFastPath: snap.ResolvedViaFastPath,
		Participants:        toParticipants(snap.Participants),
	}, nil
}

func (s *ConnectServer) StopSession(ctx context.Context, _ *pb.StopSessionRequest) (*pb.StopSessionResponse, error) {
	if _, ok := auth.UserIDFromContext(ctx); !ok {
		return nil, errors.MapToGRPCError(errors.ErrUserNotFound)
	}

	if err := s.sessions.Stop(ctx); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.StopSessionResponse{State: string(domain.StateIdle)}, nil
}

func toParticipants(participants []domain.Participant) []*pb.GroupParticipant {
	return lo.Map(participants, func(item domain.Participant, _ int) *pb.GroupParticipant {
		return &pb.GroupParticipant{
			Id:           item.ID,
			Number:       item.RawNumber,
			IsAdmin:      item.IsAdmin,
			IsSuperAdmin: item.IsSuperAdmin,
		}
	})
}
