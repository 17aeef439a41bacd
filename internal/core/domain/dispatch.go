package domain

// ProviderHandle is an opaque identifier for a prospective provider.
// The engine passes handles through to selection and dispatch without
// inspecting them.
type ProviderHandle string

// Channel is a contact channel. ChannelPriority lists them in the order
// dispatch attempts are made; the first success wins.
type Channel string

const (
	ChannelDirect  Channel = "direct"
	ChannelWebForm Channel = "web_form"
	ChannelSMS     Channel = "sms"
	ChannelManual  Channel = "manual"
)

// ChannelPriority is the fixed attempt order for contacting a provider.
var ChannelPriority = []Channel{ChannelDirect, ChannelWebForm, ChannelSMS, ChannelManual}

// MessagePayload is prepared contact content. The engine never builds
// payloads itself; a Composer collaborator does.
type MessagePayload struct {
	Subject string
	Body    string
}

// DispatchResult is the outcome of a single contact attempt.
type DispatchResult struct {
	Success bool
	Channel Channel
	Reason  string
}

// Progress is the campaign's actual inbound state as reported by the
// progress source.
type Progress struct {
	BidsReceived      int
	ResponsesReceived int
}
