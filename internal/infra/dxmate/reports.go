package infra_dxmate

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dxmate/dxmate-bot/internal/model"
)

type saveReportRequest struct {
	ReportID   model.ReportID   `json:"reportId"`
	ReportData model.ReportData `json:"reportData"`
}

func (c *Client) SaveReport(ctx context.Context, r model.Report) error {
	return c.do(ctx, http.MethodPost, "/reports", nil, saveReportRequest{ReportID: r.ID, ReportData: r.Data}, nil)
}

// GetReport returns nil once the report was deleted.
func (c *Client) GetReport(ctx context.Context, id model.ReportID) (*model.ReportData, error) {
	var data *model.ReportData
	err := c.do(ctx, http.MethodGet, "/reports/"+url.PathEscape(string(id)), nil, nil, &data)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

type reportIDRequest struct {
	ReportID model.ReportID `json:"reportId"`
}

// DeleteReport is idempotent like DeleteRoom.
func (c *Client) DeleteReport(ctx context.Context, id model.ReportID) error {
	err := c.do(ctx, http.MethodPost, "/reports/delete", nil, reportIDRequest{ReportID: id}, nil)
	if errors.Is(err, model.ErrNotFound) {
		c.logger.Debug("report already deleted", "report_id", id)
		return nil
	}
	return err
}
