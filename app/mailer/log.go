package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender records the message instead of delivering it. Used when no
// SMTP host is configured so the form flow stays testable locally.
type LogSender struct {
	logger logrus.FieldLogger
}

func NewLogSender(logger logrus.FieldLogger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Name() string {
	return "log"
}

func (s *LogSender) Send(_ context.Context, msg *Message) error {
	s.logger.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Enquiry email suppressed (no SMTP configured)")
	return nil
}
