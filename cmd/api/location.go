package main

import (
	"context"
	"errors"

	"aircast/internal/location"
	"aircast/internal/types"

	"github.com/danielgtaylor/huma/v2"
)

// GetLocationInput defines the query parameters for the location endpoint
type GetLocationInput struct {
	City string `query:"city" required:"true" minLength:"1" example:"Paris" doc:"Place name to geocode"`
}

// GetLocationOutput is the geocoded place
type GetLocationOutput struct {
	Body types.Location
}

func (app *App) handleGetLocation(ctx context.Context, input *GetLocationInput) (*GetLocationOutput, error) {
	loc, err := app.locationService.Geocode(ctx, input.City)
	if err != nil {
		return nil, app.upstreamError("failed to geocode location", err, "city", input.City)
	}
	return &GetLocationOutput{Body: *loc}, nil
}

// upstreamError maps pipeline failures to HTTP errors: unknown places are 404,
// anything else means a remote API failed
func (app *App) upstreamError(msg string, err error, attrs ...any) error {
	if errors.Is(err, location.ErrLocationNotFound) {
		return huma.Error404NotFound(err.Error())
	}

	app.logger.Error(msg, append(attrs, "error", err)...)
	return huma.Error502BadGateway(msg, err)
}
