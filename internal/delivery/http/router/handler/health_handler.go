// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"campwatch/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const (
	bannerMessage = "Welcome to Camply Web Interface"
	apiVersion    = "0.1.0"
)

// Root answers the service banner.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": bannerMessage,
		"version": apiVersion,
	}, bannerMessage)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"}, "Service is healthy")
}
