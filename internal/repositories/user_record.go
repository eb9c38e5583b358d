package repositories

import (
	"encoding/json"
	"fmt"
	"slices"
)

// appendTripToUserRecord adds key to the trips list of a raw user record,
// keeping any other fields the record carries. changed is false when the key
// was already indexed.
func appendTripToUserRecord(raw []byte, ownerID, key string) (out []byte, changed bool, err error) {
	fields := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, false, fmt.Errorf("decode user record: %w", err)
		}
	}

	trips, err := tripsOf(fields)
	if err != nil {
		return nil, false, err
	}
	if slices.Contains(trips, key) {
		return raw, false, nil
	}
	trips = append(trips, key)

	if _, ok := fields["id"]; !ok {
		id, _ := json.Marshal(ownerID)
		fields["id"] = id
	}
	encoded, _ := json.Marshal(trips)
	fields["trips"] = encoded

	out, err = json.Marshal(fields)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// tripsFromUserRecord reads the trips list of a raw user record; a missing
// record or list is an empty index.
func tripsFromUserRecord(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	return tripsOf(fields)
}

func tripsOf(fields map[string]json.RawMessage) ([]string, error) {
	trips := []string{}
	raw, ok := fields["trips"]
	if !ok || string(raw) == "null" {
		return trips, nil
	}
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, fmt.Errorf("decode trips index: %w", err)
	}
	return trips, nil
}
