package dispatch

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

const subjectTemplate = `Bid invitation{{if .ProjectType}}: {{.ProjectType}}{{end}}`

const bodyTemplate = `Hello {{.Provider}},

We are collecting bids{{if .ProjectType}} for a {{.ProjectType}} project{{end}}{{if .Region}} in {{.Region}}{{end}}.
We need {{.BidTarget}} bids by {{.Deadline}}. Please reply with your quote if you are available.
`

// SMS payloads must stay terse; the long form goes on every other channel.
const smsTemplate = `Bid request{{if .ProjectType}} ({{.ProjectType}}){{end}}: {{.BidTarget}} bids needed by {{.Deadline}}. Reply to quote.`

// TemplateComposer implements port.Composer by rendering text templates
// over campaign details fetched from the store.
type TemplateComposer struct {
	store   port.CampaignStore
	subject *template.Template
	body    *template.Template
	sms     *template.Template
}

// NewTemplateComposer returns a composer with the built-in templates.
func NewTemplateComposer(store port.CampaignStore) *TemplateComposer {
	return &TemplateComposer{
		store:   store,
		subject: template.Must(template.New("subject").Parse(subjectTemplate)),
		body:    template.Must(template.New("body").Parse(bodyTemplate)),
		sms:     template.Must(template.New("sms").Parse(smsTemplate)),
	}
}

type composeData struct {
	Provider    string
	ProjectType string
	Region      string
	BidTarget   int
	Deadline    string
}

// Compose renders the payload for one provider and channel. SMS gets
// the short body, every other channel the long one.
func (c *TemplateComposer) Compose(ctx context.Context, campaignID string, provider domain.ProviderHandle, channel domain.Channel) (domain.MessagePayload, error) {
	campaign, err := c.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return domain.MessagePayload{}, fmt.Errorf("load campaign: %w", err)
	}

	data := composeData{
		Provider:    string(provider),
		ProjectType: campaign.Project.ProjectType,
		Region:      campaign.Project.Region,
		BidTarget:   campaign.BidTarget,
		Deadline:    campaign.Deadline().UTC().Format(time.RFC3339),
	}

	var subject, body strings.Builder
	if err = c.subject.Execute(&subject, data); err != nil {
		return domain.MessagePayload{}, err
	}
	bodyTpl := c.body
	if channel == domain.ChannelSMS {
		bodyTpl = c.sms
	}
	if err = bodyTpl.Execute(&body, data); err != nil {
		return domain.MessagePayload{}, err
	}

	return domain.MessagePayload{Subject: subject.String(), Body: body.String()}, nil
}
