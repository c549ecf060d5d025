package cli

import (
	"context"
	"os"

	"github.com/gabapcia/zapland/internal/reconciler"

	"github.com/urfave/cli/v3"
)

// QRDisplay draws arbitrary content as a QR code.
type QRDisplay interface {
	ShowQR(title, content string)
}

// Run initializes and executes the zapland CLI application.
//
// It registers all available commands, including:
//
//   - `create`: Creates a wallet, issues a top-up invoice and keeps it fresh.
//   - `open`: Opens an existing wallet from its NWC connection string.
//
// Both session commands accept `--qr nwc|address` to draw the credential QR.
//   - `qr`: Draws a QR code for a connection string, address or invoice.
//
// Session commands run until the context is done or an interrupt is received.
func Run(ctx context.Context, svc reconciler.Service, qr QRDisplay) error {
	return newApp(svc, qr).Run(ctx, os.Args)
}

func newApp(svc reconciler.Service, qr QRDisplay) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "zapland",
		Description:           "Create and monitor zap.land custodial Lightning wallets from the terminal.",
		Usage:                 "zapland [command] [flags]",
		Commands: []*cli.Command{
			createWalletCommand(svc, qr),
			openWalletCommand(svc, qr),
			showQRCommand(qr),
		},
	}
}
