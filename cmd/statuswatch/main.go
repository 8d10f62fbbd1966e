// statuswatch polls a running server and renders the pairing state machine
// as it advances. With -invite it resolves a group invite once READY and
// prints the verified membership.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	pb "grouplink/proto/connect"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

var stateStyles = map[string]color.Color{
	"IDLE":          color.FgGray,
	"INITIALIZING":  color.FgYellow,
	"QR_READY":      color.FgCyan,
	"AUTHENTICATED": color.FgBlue,
	"READY":         color.FgGreen,
	"DISCONNECTED":  color.FgRed,
}

func main() {
	addr := flag.String("addr", "localhost:50051", "Server address")
	token := flag.String("token", "", "Bearer token for authenticated calls")
	invite := flag.String("invite", "", "Invite link or code to resolve once READY")
	interval := flag.Duration("interval", time.Second, "Polling interval")
	follow := flag.Bool("follow", false, "Keep watching state transitions after READY")
	flag.Parse()

	if *token == "" {
		log.Fatal("A -token is required")
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", *addr, err)
	}
	defer conn.Close()

	client := pb.NewConnectServiceClient(conn)
	ctx := metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+*token)

	if _, err := client.StartSession(ctx, &pb.StartSessionRequest{}); err != nil {
		log.Fatalf("StartSession failed: %v", err)
	}

	lastState := ""
	for {
		status, err := client.GetStatus(ctx, &pb.GetStatusRequest{})
		if err != nil {
			log.Fatalf("GetStatus failed: %v", err)
		}

		if status.State != lastState {
			style, ok := stateStyles[status.State]
			if !ok {
				style = color.FgDefault
			}
			fmt.Printf("%s  %s\n", time.Now().Format("15:04:05"), style.Render(status.State))

			if status.PairingArtifact != "" {
				fmt.Println("Scan the pairing artifact:")
				fmt.Println(status.PairingArtifact)
			}
			lastState = status.State
		}

		if status.State == "READY" {
			if *invite != "" {
				resolveAndPrint(ctx, client, *invite)
				*invite = ""
			}
			if !*follow {
				return
			}
		}
		if status.State == "DISCONNECTED" && !*follow {
			os.Exit(1)
		}

		time.Sleep(*interval)
	}
}

func resolveAndPrint(ctx context.Context, client pb.ConnectServiceClient, invite string) {
	resp, err := client.ResolveInvite(ctx, &pb.ResolveInviteRequest{InviteRef: invite})
	if err != nil {
		log.Fatalf("ResolveInvite failed: %v", err)
	}

	path := "slow"
	if resp.ResolvedViaFastPath {
		path = "fast"
	}
	fmt.Printf("\n%s (%s, %d members, %s path)\n",
		color.FgGreen.Render(resp.DisplayName), resp.GroupId, resp.MemberCount, path)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Number", "Admin", "Super Admin"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, p := range resp.Participants {
		table.Append([]string{
			p.Id,
			p.Number,
			fmt.Sprintf("%t", p.IsAdmin),
			fmt.Sprintf("%t", p.IsSuperAdmin),
		})
	}
	table.Render()
}
