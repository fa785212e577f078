package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jobcrawler/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Requester performs a single HTTP GET.
type Requester interface {
	Get(ctx context.Context, url string, headers http.Header) (*http.Response, error)
}

type ContentService struct {
	baseURL   string
	format    models.ResponseFormat
	requester Requester
	logger    *logrus.Logger
}

func NewContentService(baseURL string, format models.ResponseFormat, requester Requester, logger *logrus.Logger) *ContentService {
	if format == "" {
		format = models.EnvelopeFormat
	}

	logger.WithFields(logrus.Fields{
		"base_url": baseURL,
		"format":   format,
	}).Debug("Content service initialized")

	return &ContentService{
		baseURL:   baseURL,
		format:    format,
		requester: requester,
		logger:    logger,
	}
}

// GetJobs fetches the jobs of one source filtered by title and city.
// Transport errors are returned unchanged.
func (s *ContentService) GetJobs(ctx context.Context, source, title, city string) ([]models.Job, error) {
	target := s.BuildURL(source, title, city)
	log := s.logger.WithFields(logrus.Fields{
		"source": source,
		"title":  title,
		"city":   city,
	})
	log.WithField("url", target).Debug("Requesting jobs")

	res, err := s.requester.Get(ctx, target, nil)
	if err != nil {
		log.WithError(err).Error("Jobs request failed")
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("request failed %d: %s", res.StatusCode, res.Status)
		log.WithError(err).Error("Jobs request failed")
		return nil, err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.WithError(err).Error("Reading jobs response failed")
		return nil, err
	}

	var jobs []models.Job
	switch s.format {
	case models.ListFormat:
		jobs, err = decodeJobList(body)
	default:
		jobs, err = s.decodeEnvelope(log, body)
	}
	if err != nil {
		log.WithError(err).Error("Decoding jobs response failed")
		return nil, err
	}

	log.WithField("count", len(jobs)).Debug("Jobs received")
	return jobs, nil
}

// BuildURL concatenates the base address and source and appends title and
// city, in that order, even when empty.
func (s *ContentService) BuildURL(source, title, city string) string {
	return fmt.Sprintf("%s%s?title=%s&city=%s", s.baseURL, source, url.QueryEscape(title), url.QueryEscape(city))
}

func decodeJobList(body []byte) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := json.Unmarshal(body, &jobs); err != nil {
		return nil, fmt.Errorf("invalid job list: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// decodeEnvelope unwraps a JobsEnvelope. A missing or malformed jobs field
// yields an empty result, not an error.
func (s *ContentService) decodeEnvelope(log *logrus.Entry, body []byte) ([]models.Job, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}

	response := gjson.ParseBytes(body)

	if response.Get("timeoutOccurred").Bool() {
		log.Warn("Upstream timeout occurred")
	}
	if !response.Get("databaseAvailable").Bool() {
		log.Warn("Backend database not available")
	}
	if msg := response.Get("error"); msg.Exists() && msg.String() != "" {
		log.WithField("backend_error", msg.String()).Warn("Backend reported an error")
	}

	field := response.Get("jobs")
	if !field.IsArray() {
		log.WithField("response", truncate(response.Raw, 256)).Error("Unexpected response format, no jobs list")
		return []models.Job{}, nil
	}

	jobs := []models.Job{}
	if err := json.Unmarshal([]byte(field.Raw), &jobs); err != nil {
		log.WithError(err).Error("Unexpected job entries in response")
		return []models.Job{}, nil
	}

	return jobs, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
