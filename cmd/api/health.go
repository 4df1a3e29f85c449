package main

import (
	"context"
)

const (
	serviceName = "aircast"
	apiVersion  = "1.0.0"
)

// PingOutput is the health check body
type PingOutput struct {
	Body struct {
		Message string `json:"message" example:"pong"`
		Service string `json:"service" example:"aircast"`
		Version string `json:"version" example:"1.0.0" doc:"API version, matches the OpenAPI document"`
	}
}

func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.Service = serviceName
	resp.Body.Version = apiVersion
	return resp, nil
}
