//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"testing"
)

func TestClient_Search_Integration(t *testing.T) {
	query := "Paris"

	client := NewClient()

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Query: %q", query)

	resp, err := client.Search(context.Background(), query, 1)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp) != 1 {
		t.Fatalf("Expected exactly 1 result, got %d", len(resp))
	}

	result := resp[0]
	t.Logf("  Place ID: %d", result.PlaceId)
	t.Logf("  Display Name: %s", result.DisplayName)
	t.Logf("  Coordinates: lat=%s, lon=%s", result.Lat, result.Lon)

	if result.Lat == "" || result.Lon == "" {
		t.Error("Lat/Lon fields are empty")
	}

	if result.DisplayName == "" {
		t.Error("DisplayName is empty")
	}

	t.Log("✓ API call successful, response structure valid")
}
