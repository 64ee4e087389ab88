// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/pubmetric/pkg/types"
)

// esummary keys each record by its UID inside the "result" object, next to
// a "uids" array giving the order. The envelope therefore decodes as a raw
// map and each record is unmarshaled individually.
type esummaryEnvelope struct {
	Result map[string]json.RawMessage `json:"result"`
}

// FetchSummaries retrieves the compact summary record for every paper in
// the cursor's result set, in the order the search returned them. A record
// that fails to unmarshal produces a warning and is skipped; the rest of
// the response is still used.
func (c *Client) FetchSummaries(ctx context.Context, cur types.ResultCursor) ([]types.PublicationSummary, error) {
	resp, err := c.get(ctx, esummaryBase, c.cursorParams(cur))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env esummaryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("parsing esummary response: %w", err)
	}
	if env.Result == nil {
		return nil, fmt.Errorf("esummary response has no result object")
	}

	var uids []string
	if raw, ok := env.Result["uids"]; ok {
		if err := json.Unmarshal(raw, &uids); err != nil {
			return nil, fmt.Errorf("parsing esummary uids: %w", err)
		}
	}

	summaries := make([]types.PublicationSummary, 0, len(uids))
	for _, uid := range uids {
		raw, ok := env.Result[uid]
		if !ok {
			fmt.Fprintf(c.warn, "warning: esummary listed uid %s but returned no record for it\n", uid)
			continue
		}
		var s types.PublicationSummary
		if err := json.Unmarshal(raw, &s); err != nil {
			fmt.Fprintf(c.warn, "warning: skipping unparsable esummary record %s: %v\n", uid, err)
			continue
		}
		if s.UID == "" {
			s.UID = uid
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
