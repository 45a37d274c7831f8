// Package mailer sends the enquiry-form emails. The transport is a
// strategy picked at startup: real SMTP when configured, a log-only
// sender otherwise, mirroring the payment provider's mock mode.
package mailer

import "context"

type Message struct {
	To        string
	Subject   string
	PlainBody string
	HTMLBody  string
}

type Sender interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}
