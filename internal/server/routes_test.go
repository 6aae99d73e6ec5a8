package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gxprime/internal/handlers"
	"gxprime/internal/models"
)

// MockCatalogService is a mock implementation of catalog.Service for testing
type MockCatalogService struct{}

func (m *MockCatalogService) Health() map[string]string {
	return map[string]string{"message": "Mock catalog is healthy"}
}

func (m *MockCatalogService) Assets() []models.Asset {
	return nil // Not needed for this specific test
}

func TestHandler(t *testing.T) {
	s := &Server{}
	s.catalog = &MockCatalogService{} // Initialize s.catalog with the mock service
	ch := handlers.NewCommonHandler(s.catalog)
	server := httptest.NewServer(http.HandlerFunc(ch.HelloWorldHandler))
	defer server.Close()
	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("error making request to server. Err: %v", err)
	}
	defer resp.Body.Close()
	// Assertions
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", resp.Status)
	}
	expected := "{\"message\":\"GX Prime Visuals API\"}"
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading response body. Err: %v", err)
	}
	if expected != string(body) {
		t.Errorf("expected response body to be %v; got %v", expected, string(body))
	}
}
