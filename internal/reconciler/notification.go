package reconciler

import "time"

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// NotificationKind identifies the event behind a notification.
type NotificationKind string

const (
	KindWalletCreated        NotificationKind = "wallet_created"
	KindWalletCreationFailed NotificationKind = "wallet_creation_failed"
	KindInvoiceFailed        NotificationKind = "invoice_failed"
	KindBalanceFetchFailed   NotificationKind = "balance_fetch_failed"
	KindPaymentReceived      NotificationKind = "payment_received"
)

const (
	longNoticeDuration  = 5 * time.Second
	shortNoticeDuration = 3 * time.Second
)

// Notification is a transient message for the user.
type Notification struct {
	Kind     NotificationKind
	Title    string
	Message  string
	Severity Severity
	Duration time.Duration
}

func walletCreatedNotification() Notification {
	return Notification{
		Kind:     KindWalletCreated,
		Title:    "Wallet created successfully",
		Severity: SeveritySuccess,
		Duration: longNoticeDuration,
	}
}

func errorNotification(kind NotificationKind, title string, err error) Notification {
	return Notification{
		Kind:     kind,
		Title:    title,
		Message:  err.Error(),
		Severity: SeverityError,
		Duration: longNoticeDuration,
	}
}

func paymentReceivedNotification() Notification {
	return Notification{
		Kind:     KindPaymentReceived,
		Title:    "Sats received",
		Severity: SeveritySuccess,
		Duration: shortNoticeDuration,
	}
}
