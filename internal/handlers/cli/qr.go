package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// showQRCommand returns a CLI command that draws content as a QR code.
//
// Usage example:
//
//	zapland qr --title "Lightning Address" --content alice@zap.land
func showQRCommand(qr QRDisplay) *cli.Command {
	return &cli.Command{
		Name:        "qr",
		Description: "Draw a QR code for a connection string, lightning address or invoice.",
		Usage:       "Prints the QR code of the given content and exits.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "content",
				Usage:    "Text to encode",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Title printed above the code",
				Value: "QR code",
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			qr.ShowQR(c.String("title"), c.String("content"))
			return nil
		},
	}
}
