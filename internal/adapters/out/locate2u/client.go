// Package locate2u implements ports.DeliveryService against the Locate2u
// routing platform. Access tokens come from the client-credentials flow
// and are cached until shortly before expiry.
package locate2u

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/pkg/errors"
)

const tokenURL = "https://id.locate2u.com/connect/token"

// Client talks to one team's Locate2u account.
type Client struct {
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	httpc        *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// New creates a client. baseURL is the team API root
// ("https://api.locate2u.com/api/v1").
func New(baseURL, clientID, clientSecret string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpc: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "locate2u.api")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "new token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "request token")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("locate2u token http %d", resp.StatusCode)
	}

	var r tokenResp
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", errors.Wrap(err, "decode token")
	}
	if r.AccessToken == "" {
		return "", errors.New("locate2u token response empty")
	}

	c.token = r.AccessToken
	// renew a minute before the platform expires the token
	c.tokenExpiry = time.Now().Add(time.Duration(r.ExpiresIn)*time.Second - time.Minute)

	return c.token, nil
}

type tripSummary struct {
	TripID                 string `json:"tripId"`
	AssignedTeamMemberID   string `json:"assignedTeamMemberId"`
	AssignedTeamMemberName string `json:"assignedTeamMemberName"`
}

type tripDetail struct {
	Stops []struct {
		StopID          int64  `json:"stopId"`
		Status          string `json:"status"`
		SourceReference string `json:"sourceReference"`
		Order           int    `json:"order"`
	} `json:"stops"`
}

// FetchStops returns today's planned stops across every trip. The stop's
// source reference carries the shop order number used for correlation.
func (c *Client) FetchStops(ctx context.Context) ([]ports.DeliveryStop, error) {
	stops, err := c.fetchStops(ctx)
	if err != nil {
		return nil, errs.NewExternalDependencyError("locate2u", err)
	}
	return stops, nil
}

func (c *Client) fetchStops(ctx context.Context) ([]ports.DeliveryStop, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	tripDate := time.Now().UTC().Format("2006-01-02")

	var trips []tripSummary
	err = c.get(ctx, token, fmt.Sprintf("/team/trips/%s", tripDate), &trips)
	if err != nil {
		return nil, errors.Wrap(err, "fetch trips")
	}

	stops := make([]ports.DeliveryStop, 0)
	for _, trip := range trips {
		var detail tripDetail
		err = c.get(ctx, token, fmt.Sprintf("/trips/id/%s", trip.TripID), &detail)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch trip %s", trip.TripID)
		}

		for _, stop := range detail.Stops {
			stops = append(stops, ports.DeliveryStop{
				TripID:         trip.TripID,
				StopID:         fmt.Sprintf("%d", stop.StopID),
				OrderNumber:    stop.SourceReference,
				DriverMemberID: trip.AssignedTeamMemberID,
				DriverName:     trip.AssignedTeamMemberName,
				StopSequence:   stop.Order,
				Delivered:      strings.EqualFold(stop.Status, "Complete"),
			})
		}
	}

	return stops, nil
}

// AddStopNote attaches a free-text note to a stop.
func (c *Client) AddStopNote(ctx context.Context, stopID, note string) error {
	if err := c.addStopNote(ctx, stopID, note); err != nil {
		return errs.NewExternalDependencyError("locate2u", err)
	}
	return nil
}

func (c *Client) addStopNote(ctx context.Context, stopID, note string) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	body := map[string]any{
		"note":              note,
		"type":              "Stop Note",
		"photoFileNames":    []string{},
		"documentFileNames": []string{},
		"metadata":          nil,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal note")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/stops/%s/notes", c.baseURL, stopID), strings.NewReader(string(payload)))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json-patch+json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("locate2u stop note http %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) get(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("locate2u %s http %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
