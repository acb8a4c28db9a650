// Package server exposes resource resolution as a REST service.
package server

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/location"
	"github.com/lyraproj/locator/render"
	"github.com/lyraproj/locator/resolver"
)

// Pattern is the response of the /pattern endpoint
type Pattern struct {
	Pattern    bool   `json:"pattern"`
	Root       string `json:"root"`
	SubPattern string `json:"sub_pattern"`
}

type handler struct {
	resolver *resolver.Resolver
	logger   hclog.Logger
}

// New creates an echo server with the routes
//
//	GET /resources?location=<expression>[&location=<expression>...]
//	GET /pattern?expression=<expression>
func New(r *resolver.Resolver) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	h := &handler{resolver: r, logger: hclog.Default().Named(`server`)}
	e.GET(`/resources`, h.resources)
	e.GET(`/pattern`, h.pattern)
	return e
}

func message(err error) map[string]string {
	return map[string]string{`message`: err.Error()}
}

func (h *handler) resources(c echo.Context) error {
	locations := c.QueryParams()[`location`]
	if len(locations) == 0 {
		return c.JSON(http.StatusBadRequest, message(api.Error(api.MissingLocation, issue.H{`keys`: []string{`location`}})))
	}
	rs, err := h.resolver.Resources(locations...)
	if err != nil {
		var ioErr *api.ResolutionIOError
		if errors.As(err, &ioErr) {
			h.logger.Error(`resolution failed`, `location`, ioErr.Location, `error`, ioErr.Cause)
			return c.JSON(http.StatusInternalServerError, message(err))
		}
		return err
	}
	h.logger.Debug(`resolved locations`, `locations`, locations, `count`, rs.Len())
	return c.JSON(http.StatusOK, render.Entries(rs))
}

func (h *handler) pattern(c echo.Context) error {
	expr := c.QueryParam(`expression`)
	if expr == `` {
		return c.JSON(http.StatusBadRequest, message(api.Error(api.MissingLocation, issue.H{`keys`: []string{`expression`}})))
	}
	pe := location.Parse(expr)
	return c.JSON(http.StatusOK, &Pattern{Pattern: pe.HasPattern(), Root: pe.Root, SubPattern: pe.SubPattern})
}
