// Package racetime provides a client for the racetime.gg category bot API.
//
// racetime.gg is a website for organizing speedrun races. Category bots
// authenticate with OAuth2 client credentials and open race rooms on
// behalf of a category. This package implements that protocol layer: the
// token exchange and the room-creation call, including recovery of the
// new room's slug from the service's redirect-style response.
//
// # Usage
//
// Create a client with your own http.Client and a logger, then exchange
// credentials for a bearer token and open a room:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := racetime.NewClient(&http.Client{Timeout: 30 * time.Second}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	token, err := client.Authorize(ctx, clientID, clientSecret)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	race := &racetime.StartRace{
//		Goal:      "Beat the game",
//		InfoBot:   "seed: https://example.com/abc",
//		AutoStart: true,
//		TimeLimit: 24,
//	}
//	slug, err := client.StartRace(ctx, race, token.AccessToken, "ootr")
//
// The returned slug identifies the room within its category and is the
// handle a race-session handler connects with afterwards.
//
// # Error Handling
//
// Failures are never retried and never swallowed; every call surfaces
// one of a closed set of error kinds:
//
//   - StatusError: the service answered with a non-2xx status
//   - ServerError: the service reported application-level error messages
//   - ErrMissingLocationHeader, ErrLocationFormat, ErrLocationCategory,
//     ErrInvalidLocationHeader: protocol violations in the room-creation
//     response
//   - wrapped net/url and encoding/json errors for malformed URIs and
//     token-response bodies
//
// Sentinels are matched with errors.Is, typed errors with errors.As. A
// cancelled context aborts the in-flight request and surfaces
// context.Canceled through the transport error.
//
// Token lifecycle (caching, refresh, expiry) and retry policy are the
// caller's responsibility.
package racetime
