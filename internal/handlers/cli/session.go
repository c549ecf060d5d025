package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/zapland/internal/handlers/terminal"
	"github.com/gabapcia/zapland/internal/reconciler"

	"github.com/urfave/cli/v3"
)

// QR views selectable with the --qr flag of session commands.
const (
	qrConnectionString = "nwc"
	qrLightningAddress = "address"
)

// ErrUnknownQRView is returned when --qr names no known view.
var ErrUnknownQRView = errors.New("unknown qr view")

func sessionQRFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "qr",
		Usage: fmt.Sprintf("Draw the QR code of the wallet's %q string or lightning %q once the session is open", qrConnectionString, qrLightningAddress),
	}
}

func validateQRView(view string) error {
	switch view {
	case "", qrConnectionString, qrLightningAddress:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQRView, view)
	}
}

// showSessionQR draws the credential view selected by --qr, if any.
func showSessionQR(qr QRDisplay, session *reconciler.Session, view string) {
	wallet := session.Wallet()

	switch view {
	case qrConnectionString:
		qr.ShowQR(terminal.TitleConnectionString, wallet.ConnectionSecret)
	case qrLightningAddress:
		qr.ShowQR(terminal.TitleLightningAddress, wallet.Address)
	}
}

// createWalletCommand returns a CLI command that creates a new wallet, issues
// a top-up invoice and keeps polling until interrupted.
//
// Usage example:
//
//	zapland create --qr nwc
func createWalletCommand(svc reconciler.Service, qr QRDisplay) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Create a new custodial wallet and watch its top-up invoice.",
		Usage:       "Creates a wallet and keeps its balance fresh. Terminates gracefully on Ctrl+C or termination signals.",
		Flags:       []cli.Flag{sessionQRFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			view := c.String("qr")
			if err := validateQRView(view); err != nil {
				return err
			}

			session, err := svc.CreateWalletAndInvoice(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			showSessionQR(qr, session, view)

			waitForShutdown(ctx)
			return nil
		},
	}
}

// openWalletCommand returns a CLI command that resumes polling an existing
// wallet from its NWC connection string.
//
// Usage example:
//
//	zapland open --nwc "nostr+walletconnect://..." --topup --qr address
func openWalletCommand(svc reconciler.Service, qr QRDisplay) *cli.Command {
	return &cli.Command{
		Name:        "open",
		Description: "Open an existing wallet from its NWC connection string.",
		Usage:       "Polls the wallet balance until interrupted. Optionally issues a top-up invoice.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "nwc",
				Usage:    "NWC connection string of the wallet",
				Sources:  cli.EnvVars("ZAPLAND_NWC"),
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "topup",
				Usage: "Issue a top-up invoice and watch it for settlement",
			},
			sessionQRFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			view := c.String("qr")
			if err := validateQRView(view); err != nil {
				return err
			}

			session, err := svc.OpenSession(ctx, c.String("nwc"))
			if err != nil {
				return err
			}
			defer svc.Close()

			showSessionQR(qr, session, view)

			if c.Bool("topup") {
				if _, err := svc.RequestTopUp(ctx); err != nil {
					return err
				}
			}

			waitForShutdown(ctx)
			return nil
		},
	}
}

// waitForShutdown blocks until ctx is done or SIGINT/SIGTERM is received.
func waitForShutdown(ctx context.Context) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-ctx.Done():
	case <-quit:
	}
}
