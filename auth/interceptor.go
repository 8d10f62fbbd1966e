package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods lists methods that do not require JWT authentication.
// Login and registration live in the account collaborator service, so every
// method on this API carries a token; only health probes are exempt.
var publicMethods = map[string]struct{}{
	"/grpc.health.v1.Health/Check": {},
}

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// AuthInterceptor handles JWT validation for incoming gRPC calls.
func AuthInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	// 1. Skip authentication for public methods
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	// 2. Extract metadata (headers) from the incoming gRPC context
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	// 3. Retrieve and validate the Authorization header
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	// Expecting the standard "Bearer <token>" format
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	// 4. Validate the JWT and extract claims
	claims, err := ValidateToken(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	// 5. Inject user identity into context for downstream service layers
	newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
	newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)

	return handler(newCtx, req)
}

// UserIDFromContext extracts the authenticated user id injected by the
// interceptor. Returns false when the context carries no identity.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
