package racetime

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// StartRace describes every parameter the race-room creation form
// accepts. The zero value of each toggle is the service's "off" state;
// numeric fields are caller-validated and must be non-negative.
type StartRace struct {
	// Goal names the race goal. It is submitted under the form key
	// "custom_goal" when GoalIsCustom is set, "goal" otherwise; the two
	// keys are mutually exclusive.
	Goal         string
	GoalIsCustom bool

	TeamRace     bool
	Invitational bool
	Unlisted     bool

	// InfoUser and InfoBot are the user-editable and bot-only portions
	// of the room's info text.
	InfoUser string
	InfoBot  string

	RequireEvenTeams bool

	// StartDelay is the countdown in seconds once the race starts.
	StartDelay int
	// TimeLimit is the maximum race duration in hours.
	TimeLimit             int
	TimeLimitAutoComplete bool

	// StreamingRequired is a tri-state: nil omits the field entirely so
	// the service applies the category default.
	StreamingRequired *bool

	AutoStart bool

	AllowComments       bool
	HideComments        bool
	AllowPreraceChat    bool
	AllowMidraceChat    bool
	AllowNonEntrantChat bool
	// ChatMessageDelay is the chat hold time in seconds.
	ChatMessageDelay int
}

// The startrace location header points at the new room as /{category}/{slug}.
var locationPattern = regexp.MustCompile(`^/([^/]+)/([^/]+)$`)

// formBool encodes a toggle the way the service expects it.
func formBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// form encodes the configuration field-by-field into the exact key set
// the startrace endpoint accepts.
func (r *StartRace) form() url.Values {
	goalKey := "goal"
	if r.GoalIsCustom {
		goalKey = "custom_goal"
	}

	form := url.Values{
		goalKey:                    {r.Goal},
		"team_race":                {formBool(r.TeamRace)},
		"invitational":             {formBool(r.Invitational)},
		"unlisted":                 {formBool(r.Unlisted)},
		"info_user":                {r.InfoUser},
		"info_bot":                 {r.InfoBot},
		"require_even_teams":       {formBool(r.RequireEvenTeams)},
		"start_delay":              {strconv.Itoa(r.StartDelay)},
		"time_limit":               {strconv.Itoa(r.TimeLimit)},
		"time_limit_auto_complete": {formBool(r.TimeLimitAutoComplete)},
		"auto_start":               {formBool(r.AutoStart)},
		"allow_comments":           {formBool(r.AllowComments)},
		"hide_comments":            {formBool(r.HideComments)},
		"allow_prerace_chat":       {formBool(r.AllowPreraceChat)},
		"allow_midrace_chat":       {formBool(r.AllowMidraceChat)},
		"allow_non_entrant_chat":   {formBool(r.AllowNonEntrantChat)},
		"chat_message_delay":       {strconv.Itoa(r.ChatMessageDelay)},
	}
	if r.StreamingRequired != nil {
		form.Set("streaming_required", formBool(*r.StreamingRequired))
	}
	return form
}

// StartRace creates a race room in the given category and returns its
// slug. An access token can be obtained with Authorize.
//
// The service answers with a 2xx status and a location header of the
// form /{category}/{slug} rather than a redirect, so the supplied
// http.Client's redirect policy never consumes it. The configuration is
// not mutated and the call performs exactly one round trip.
func (c *Client) StartRace(ctx context.Context, race *StartRace, accessToken, category string) (string, error) {
	requestURL, err := c.uri(fmt.Sprintf("/o/%s/startrace", category))
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(race.form().Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	c.logger.Debug().
		Str("url", requestURL).
		Str("category", category).
		Msg("Creating race room")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requestURL); err != nil {
		return "", err
	}

	// Map lookup rather than Get: a present-but-empty header is a format
	// violation, not a missing header.
	values, ok := resp.Header["Location"]
	if !ok || len(values) == 0 {
		return "", ErrMissingLocationHeader
	}
	location := values[0]
	if !utf8.ValidString(location) {
		return "", fmt.Errorf("location header %q: %w", location, ErrInvalidLocationHeader)
	}

	match := locationPattern.FindStringSubmatch(location)
	if match == nil {
		return "", fmt.Errorf("location header %q: %w", location, ErrLocationFormat)
	}
	if match[1] != category {
		return "", fmt.Errorf("location header names category %q, requested %q: %w", match[1], category, ErrLocationCategory)
	}

	slug := match[2]

	c.logger.Debug().
		Str("category", category).
		Str("slug", slug).
		Msg("Race room created")

	return slug, nil
}
