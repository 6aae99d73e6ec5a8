package services

import (
	"context"
	"fmt"
	"net/url"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"gxprime/internal/metrics"
	"gxprime/internal/models"
)

// Fixed third-party share templates. The payload is only the URL-encoded
// title and detail-page URL; no API keys are involved.
const (
	xShareTemplate        = "https://twitter.com/intent/tweet?url=%s&text=%s"
	linkedInShareTemplate = "https://www.linkedin.com/sharing/share-offsite/?url=%s"
	lineShareTemplate     = "https://social-plugins.line.me/lineit/share?url=%s"
)

type ShareService interface {
	BuildShareLinks(ctx context.Context, asset models.Asset) models.ShareLinks
}

type shareServiceImpl struct {
	siteURL string
}

func NewShareService() ShareService {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}
	return &shareServiceImpl{siteURL: siteURL}
}

func (s *shareServiceImpl) BuildShareLinks(ctx context.Context, asset models.Asset) models.ShareLinks {
	pageURL := s.siteURL + "/material/" + url.PathEscape(asset.ID)
	encURL := url.QueryEscape(pageURL)
	encTitle := url.QueryEscape(asset.Title)

	metrics.ShareLinksBuiltTotal.Inc()
	return models.ShareLinks{
		X:        fmt.Sprintf(xShareTemplate, encURL, encTitle),
		LinkedIn: fmt.Sprintf(linkedInShareTemplate, encURL),
		Line:     fmt.Sprintf(lineShareTemplate, encURL),
	}
}
