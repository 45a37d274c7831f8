package service

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/factory"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/mailer"
	"github.com/sirupsen/logrus"
)

// FormDefinition describes one of the site's enquiry forms: the subject
// of the resulting email and which submitted fields must be present.
type FormDefinition struct {
	Kind     string
	Subject  string
	Required []string
}

var formDefinitions = []FormDefinition{
	{Kind: "school-visit", Subject: "New school visit booking request", Required: []string{"name", "email", "school_name", "preferred_date"}},
	{Kind: "mosque-visit", Subject: "New mosque visit booking request", Required: []string{"name", "email", "group_size", "preferred_date"}},
	{Kind: "volunteer", Subject: "New volunteering application", Required: []string{"name", "email", "availability"}},
	{Kind: "partnership", Subject: "New partnership enquiry", Required: []string{"name", "email", "organisation"}},
	{Kind: "fundraising", Subject: "New fundraising enquiry", Required: []string{"name", "email", "message"}},
	{Kind: "contact", Subject: "New contact enquiry", Required: []string{"name", "email", "message"}},
}

// LookupForm returns the definition for an enquiry kind.
func LookupForm(kind string) (FormDefinition, bool) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	for _, def := range formDefinitions {
		if def.Kind == kind {
			return def, true
		}
	}
	return FormDefinition{}, false
}

type EnquiryService struct {
	sender mailer.Sender
	from   string
	to     string
	logger logrus.FieldLogger
}

func NewEnquiryService(sender mailer.Sender, from, to string) *EnquiryService {
	return &EnquiryService{
		sender: sender,
		from:   from,
		to:     to,
		logger: factory.NewModuleLogger("enquiries-service"),
	}
}

// Submit validates the submission against its form definition, formats
// the enquiry email, and hands it to the configured sender.
func (s *EnquiryService) Submit(ctx context.Context, kind string, fields map[string]string) error {
	def, ok := LookupForm(kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownForm, kind)
	}

	for _, field := range def.Required {
		if strings.TrimSpace(fields[field]) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
		}
	}

	msg := &mailer.Message{
		To:        s.to,
		Subject:   def.Subject,
		PlainBody: plainEnquiryBody(def, fields),
		HTMLBody:  htmlEnquiryBody(def, fields),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"form":   def.Kind,
			"sender": s.sender.Name(),
		}).Error("Enquiry email delivery failed")
		return err
	}

	s.logger.WithField("form", def.Kind).Info("Enquiry submitted")
	return nil
}

func sortedFieldKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func plainEnquiryBody(def FormDefinition, fields map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s submitted via the website.\n\n", def.Subject)
	for _, key := range sortedFieldKeys(fields) {
		fmt.Fprintf(&b, "%s: %s\n", key, fields[key])
	}
	return b.String()
}

func htmlEnquiryBody(def FormDefinition, fields map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2><table>", html.EscapeString(def.Subject))
	for _, key := range sortedFieldKeys(fields) {
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(key), html.EscapeString(fields[key]))
	}
	b.WriteString("</table>")
	return b.String()
}
