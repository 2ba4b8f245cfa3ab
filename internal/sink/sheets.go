package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SheetsSink implementa RowSink contra la API REST de Google Sheets
// (spreadsheets.values.append). La autenticación llega como bearer
// token ya emitido; el intercambio OAuth queda fuera del servicio.
type SheetsSink struct {
	baseURL       string
	spreadsheetID string
	sheetRange    string
	accessToken   string
	client        *http.Client
	logger        *zap.Logger
}

func NewSheetsSink(baseURL, spreadsheetID, sheetRange, accessToken string, logger *zap.Logger) *SheetsSink {
	if baseURL == "" {
		baseURL = "https://sheets.googleapis.com"
	}
	if sheetRange == "" {
		sheetRange = "Sheet1"
	}
	return &SheetsSink{
		baseURL:       strings.TrimRight(baseURL, "/"),
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
		accessToken:   accessToken,
		client:        &http.Client{Timeout: 30 * time.Second},
		logger:        logger,
	}
}

type appendRequest struct {
	Values [][]string `json:"values"`
}

type appendResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *SheetsSink) Append(ctx context.Context, row []string) error {
	reqBody := appendRequest{Values: [][]string{row}}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		s.baseURL, s.spreadsheetID, url.PathEscape(s.sheetRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		if s.logger != nil {
			s.logger.Warn("sheets append error",
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", respBody),
			)
		}
		return fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var ar appendResponse
	if err := json.Unmarshal(respBody, &ar); err != nil {
		return fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}
	if ar.Error != nil {
		return fmt.Errorf("%w: api error: %s", ErrUnavailable, ar.Error.Message)
	}
	return nil
}
