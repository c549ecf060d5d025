// Package terminal renders reconciler state as plain text on a terminal.
//
// Frames are written only when their text changes, so the steady polling of
// an idle wallet produces no output. QR codes are drawn with half blocks and
// stay "open" until the reconciler closes them or another one replaces them.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gabapcia/zapland/internal/pkg/logger"
	"github.com/gabapcia/zapland/internal/reconciler"

	"github.com/mdp/qrterminal/v3"
)

const (
	devWarning      = "Developer instance, use at your own risk"
	backupReminder  = "Important: save your NWC string, it's the only way to access your wallet."
	unknownBalance  = "?"
	loadingBalance  = "..."
	invoicePaidNote = "(paid)"
)

// QR view titles.
const (
	TitleConnectionString = "NWC Connection String"
	TitleLightningAddress = "Lightning Address"
)

// InvoiceTitle returns the QR title for a top-up invoice of the given amount.
func InvoiceTitle(invoice reconciler.PendingInvoice) string {
	return "Invoice for " + invoice.Amount.String()
}

type config struct {
	invoiceQR bool
	quietZone int
}

// Option configures a Surface.
type Option func(*config)

// WithInvoiceQR draws the QR code of every new pending invoice as soon as it
// shows up in a rendered state.
func WithInvoiceQR() Option {
	return func(c *config) {
		c.invoiceQR = true
	}
}

// WithQuietZone sets the blank border drawn around QR codes, in modules.
func WithQuietZone(modules int) Option {
	return func(c *config) {
		if modules > 0 {
			c.quietZone = modules
		}
	}
}

// qrView is the QR code currently on screen.
type qrView struct {
	title   string
	content string
}

// Surface writes reconciler frames, notifications and QR codes to out.
type Surface struct {
	mu  sync.Mutex
	out io.Writer
	cfg config

	lastFrame    string
	qr           *qrView
	shownInvoice string
}

var _ reconciler.Surface = (*Surface)(nil)

// New returns a Surface that writes to out.
func New(out io.Writer, opts ...Option) *Surface {
	cfg := config{
		quietZone: 2,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Surface{
		out: out,
		cfg: cfg,
	}
}

// Render writes the frame for state unless it matches the previous one.
func (s *Surface) Render(ctx context.Context, state reconciler.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := renderFrame(state)
	if frame != s.lastFrame {
		s.lastFrame = frame
		s.write(frame)
	}

	if !s.cfg.invoiceQR || !state.PendingInvoice.Watching() {
		return
	}

	invoice := *state.PendingInvoice
	if invoice.Invoice == s.shownInvoice {
		return
	}

	s.shownInvoice = invoice.Invoice
	s.showQR(InvoiceTitle(invoice), invoice.Invoice)
	logger.Debug(ctx, "invoice qr shown", "payment_hash", invoice.PaymentHash)
}

// Notify writes a one-line notification.
func (s *Surface) Notify(_ context.Context, n reconciler.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("[%s] %s", n.Severity, n.Title)
	if n.Message != "" {
		line += ": " + n.Message
	}

	s.write(line + "\n")
}

// CloseQR closes the open QR view if it displays content.
func (s *Surface) CloseQR(ctx context.Context, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.qr == nil || s.qr.content != content {
		return
	}

	s.write(fmt.Sprintf("%s closed\n", s.qr.title))
	logger.Debug(ctx, "qr view closed", "title", s.qr.title)
	s.qr = nil
}

// ShowQR draws content as a QR code under title, replacing any open view.
func (s *Surface) ShowQR(title, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showQR(title, content)
}

func (s *Surface) showQR(title, content string) {
	s.qr = &qrView{title: title, content: content}

	s.write(title + "\n")
	qrterminal.GenerateWithConfig(content, qrterminal.Config{
		Level:          qrterminal.H,
		Writer:         s.out,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		QuietZone:      s.cfg.quietZone,
	})
	s.write(content + "\n")
}

func (s *Surface) write(text string) {
	// A broken terminal leaves nothing to report to.
	_, _ = io.WriteString(s.out, text)
}

// renderFrame builds the text shown for state.
//
// The loading marker replaces the balance only while no balance is known yet,
// so routine refreshes of a known balance do not produce new frames.
func renderFrame(state reconciler.State) string {
	var b strings.Builder

	b.WriteString("\n")
	if state.Session.IsDev() {
		b.WriteString(devWarning + "\n")
	}

	balance := unknownBalance
	switch {
	case state.Balance.Known:
		balance = state.Balance.Amount.String()
	case state.Balance.Loading:
		balance = loadingBalance
	}
	fmt.Fprintf(&b, "Balance: %s\n", balance)

	if state.Session.MaxBalance != nil {
		fmt.Fprintf(&b, "Maximum balance: %s\n", state.Session.MaxBalance.String())
	}

	fmt.Fprintf(&b, "NWC connection string:\n  %s\n", state.Session.ConnectionSecret)
	fmt.Fprintf(&b, "Lightning address:\n  %s\n", state.Session.Address)

	if invoice := state.PendingInvoice; invoice != nil {
		fmt.Fprintf(&b, "Invoice to topup for %s:\n  %s\n", invoice.Amount.String(), invoice.Invoice)
		if !invoice.Watching() {
			b.WriteString("  " + invoicePaidNote + "\n")
		}
	}

	b.WriteString(backupReminder + "\n")
	return b.String()
}
