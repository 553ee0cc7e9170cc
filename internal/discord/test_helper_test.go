package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RocksBot_Go/internal/shop"
)

const (
	testGuildID   = "20"
	testUserID    = "10"
	testChannelID = "30"
	testAppID     = "99"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedRequest is one Discord REST call made by the bot
type capturedRequest struct {
	Method string
	Path   string
	Body   string
}

// sentMessage decodes interaction callbacks, webhook edits and channel messages
type sentMessage struct {
	Type       int                       `json:"type"`
	Data       *sentMessage              `json:"data"`
	Content    *string                   `json:"content"`
	Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	Components json.RawMessage           `json:"components"`
	Flags      int                       `json:"flags"`
}

func (m sentMessage) text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// TestContext bundles a bot wired to mocks with a session whose REST calls
// are recorded instead of sent.
type TestContext struct {
	Bot     *Bot
	Session *discordgo.Session
	Economy *MockEconomyService
	Shop    *MockShopService

	mu       sync.Mutex
	requests []capturedRequest
	// status overrides the response code for requests whose path contains the key
	status map[string]int
	// payloads overrides the body for "<METHOD> <path fragment>"
	payloads map[string]string
}

func testConfig() Config {
	return Config{
		Token:   "test-token",
		AppID:   testAppID,
		GuildID: testGuildID,
		Roles:   Roles{Admin: "Admin", Creator: "Creator", Member: "Members"},
		Taxonomy: shop.Taxonomy{
			Applications:          []string{"Alight Motion", "After Effects"},
			Categories:            []string{"CC", "FX", "Preset"},
			FullPreviewCategories: []string{"FX"},
		},
	}
}

func SetupTestContext(t *testing.T) *TestContext {
	return SetupTestContextWithConfig(t, testConfig())
}

func SetupTestContextWithConfig(t *testing.T, cfg Config) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Session:  session,
		Economy:  new(MockEconomyService),
		Shop:     new(MockShopService),
		status:   make(map[string]int),
		payloads: make(map[string]string),
	}
	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: tc.roundTrip}}

	require.NoError(t, session.State.GuildAdd(&discordgo.Guild{
		ID: testGuildID,
		Roles: []*discordgo.Role{
			{ID: "501", Name: "Admin"},
			{ID: "502", Name: "Creator"},
			{ID: "503", Name: "Members"},
		},
	}))

	tc.Bot = NewWithSession(session, cfg, tc.Economy, tc.Shop, shop.NewSessionStore(10, time.Minute))
	return tc
}

func (tc *TestContext) roundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	tc.mu.Lock()
	tc.requests = append(tc.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: string(body)})
	code := http.StatusOK
	for fragment, c := range tc.status {
		if strings.Contains(req.URL.Path, fragment) {
			code = c
		}
	}
	tc.mu.Unlock()

	payload := "{}"
	for key, p := range tc.payloads {
		method, fragment, _ := strings.Cut(key, " ")
		if method == req.Method && strings.Contains(req.URL.Path, fragment) {
			payload = p
		}
	}
	switch {
	case code != http.StatusOK:
		payload = `{"code":50007,"message":"Cannot send messages to this user"}`
	case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/users/@me/channels"):
		payload = `{"id":"dm-1","type":1}`
	case req.Method == http.MethodGet && strings.Contains(req.URL.Path, "/users/"):
		payload = `{"id":"77","username":"maker"}`
	}

	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(bytes.NewBufferString(payload)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

// FailPath makes every request whose path contains fragment answer with code
func (tc *TestContext) FailPath(fragment string, code int) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.status[fragment] = code
}

// Respond sets the body returned for method requests whose path contains fragment
func (tc *TestContext) Respond(method, fragment, payload string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.payloads[method+" "+fragment] = payload
}

// Requests returns the recorded calls matching method whose path contains fragment
func (tc *TestContext) Requests(method, fragment string) []capturedRequest {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	var out []capturedRequest
	for _, r := range tc.requests {
		if r.Method == method && strings.Contains(r.Path, fragment) {
			out = append(out, r)
		}
	}
	return out
}

// Callbacks decodes every initial interaction response
func (tc *TestContext) Callbacks(t *testing.T) []sentMessage {
	return decodeAll(t, tc.Requests(http.MethodPost, "/callback"))
}

// Edits decodes every edit of the original interaction response
func (tc *TestContext) Edits(t *testing.T) []sentMessage {
	return decodeAll(t, tc.Requests(http.MethodPatch, "/messages/@original"))
}

// ChannelMessages decodes every message posted to channelID
func (tc *TestContext) ChannelMessages(t *testing.T, channelID string) []sentMessage {
	return decodeAll(t, tc.Requests(http.MethodPost, "/channels/"+channelID+"/messages"))
}

// LastEdit returns the final edit of the original response
func (tc *TestContext) LastEdit(t *testing.T) sentMessage {
	t.Helper()
	edits := tc.Edits(t)
	require.NotEmpty(t, edits, "expected an interaction response edit")
	return edits[len(edits)-1]
}

// LastCallback returns the data of the latest interaction callback
func (tc *TestContext) LastCallback(t *testing.T) (int, sentMessage) {
	t.Helper()
	cbs := tc.Callbacks(t)
	require.NotEmpty(t, cbs, "expected an interaction callback")
	last := cbs[len(cbs)-1]
	if last.Data == nil {
		return last.Type, sentMessage{}
	}
	return last.Type, *last.Data
}

func decodeAll(t *testing.T, reqs []capturedRequest) []sentMessage {
	t.Helper()
	out := make([]sentMessage, 0, len(reqs))
	for _, r := range reqs {
		var m sentMessage
		require.NoError(t, json.Unmarshal([]byte(r.Body), &m), r.Body)
		out = append(out, m)
	}
	return out
}

// commandInteraction builds a slash command invocation in the test guild
func commandInteraction(name string, roles []string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "i-1",
			AppID:     testAppID,
			Token:     "tok",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   testGuildID,
			ChannelID: testChannelID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User:  &discordgo.User{ID: testUserID, Username: "Tester"},
				Roles: roles,
			},
		},
	}
}

// componentInteraction builds a button click or select menu choice
func componentInteraction(userID, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "i-2",
			AppID:     testAppID,
			Token:     "tok",
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   testGuildID,
			ChannelID: testChannelID,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

func intOption(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func stringOption(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func userOption(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: id}
}

func attachmentOption(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionAttachment, Value: id}
}
