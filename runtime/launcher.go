package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"time"

	"grouplink/domain"
	"grouplink/errors"
	"grouplink/infrastructure/grpc/client"
	"grouplink/observability"
	pb "grouplink/proto/channel"

	"google.golang.org/grpc"
)

// Launcher starts the browser-automation sidecar as a child process and hands
// back a connected channel. At most one sidecar runs at a time; the session
// service calls Launch through its channel factory.
type Launcher struct {
	log     *slog.Logger
	binPath string
	host    string
	port    int
	pid     int
}

func NewLauncher(log *slog.Logger, binPath, host string, port int) *Launcher {
	return &Launcher{log: log, binPath: binPath, host: host, port: port}
}

// Launch orchestrates the full sidecar lifecycle: fail-fast check on the
// binary, child process tied to the context, then a blocking dial until the
// gRPC server answers. The process is killed if the handshake never lands.
func (l *Launcher) Launch(ctx context.Context, userID string) (domain.Channel, error) {
	// 1. Validate binary existence before forking anything.
	if _, err := os.Stat(l.binPath); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrSidecarNotFound, l.binPath)
	}

	// 2. The sidecar scopes its browser profile to the user so a stored
	// session can be restored across restarts.
	cmd := exec.CommandContext(ctx, l.binPath,
		"-port", strconv.Itoa(l.port),
		"-user", userID,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSidecarStartFailed, err)
	}
	l.pid = cmd.Process.Pid
	l.log.Info("Channel sidecar started", "pid", l.pid, "port", l.port)

	conn, err := dialWithRetry(ctx, l.host, l.port)
	if err != nil {
		// Cleanup: prevent zombie processes if the gRPC handshake fails.
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("%w on port %d: %v", errors.ErrSidecarUnavailable, l.port, err)
	}

	ch, err := client.NewChannelClient(ctx, l.log, pb.NewAutomationChannelClient(conn))
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}

	// Reap the child once the context or the sidecar itself ends it.
	go func() {
		if err := cmd.Wait(); err != nil {
			l.log.Warn("Channel sidecar exited", "pid", cmd.Process.Pid, "err", err)
		}
	}()

	return ch, nil
}

// Stats reports the sidecar process footprint for the watchdog log line.
func (l *Launcher) Stats() []any {
	return observability.ProcessStats(int32(l.pid))
}

// dialWithRetry retries the connection to the sidecar to absorb browser
// startup latency. Tries for 10 seconds, every 500ms.
func dialWithRetry(ctx context.Context, host string, port int) (*grpc.ClientConn, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	for i := 0; i < 20; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		conn, err := grpc.DialContext(attemptCtx, addr, grpc.WithInsecure(), grpc.WithBlock())
		cancel()
		if err == nil {
			return conn, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("timeout: sidecar not responding at %s after retries", addr)
}
