/*
 * routes.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rmera/chemview/chemjson"
	"github.com/rmera/chemview/chemplot"
	"github.com/rmera/chemview/internal/logger"
	"github.com/rmera/chemview/internal/pipeline"
	"github.com/rmera/chemview/viewer"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.index)
	s.echo.GET("/api/compound", s.apiCompound)
	s.echo.GET("/depict.png", s.depict)
	s.echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func depictURL(query string) string {
	return "/depict.png?" + url.Values{"name": {query}}.Encode()
}

// index serves the page. With a name parameter it also runs the pipeline for it.
func (s *Server) index(c echo.Context) error {
	query := c.QueryParam("name")
	ctx := c.Request().Context()
	res, err := s.pipeline.Run(ctx, query)

	status := http.StatusOK
	var nf *pipeline.NotFoundError
	if err != nil && !errors.As(err, &nf) {
		logger.For(ctx).WithError(err).Error("lookup failed")
		status = http.StatusBadGateway
	}
	link := ""
	if res != nil {
		link = depictURL(res.Query)
	}
	var buf bytes.Buffer
	if err := viewer.RenderPage(&buf, pipeline.PageData(query, res, err, link)); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// runForAPI runs the pipeline for the JSON and image endpoints. When it returns a nil result
// the error response has already been sent.
func (s *Server) runForAPI(c echo.Context, function string) (*pipeline.Result, error) {
	query := c.QueryParam("name")
	ctx := c.Request().Context()
	res, err := s.pipeline.Run(ctx, query)
	var nf *pipeline.NotFoundError
	switch {
	case errors.As(err, &nf):
		jerr := chemjson.NewError(function, err)
		jerr.Query = nf.Query
		return nil, sendError(c, http.StatusNotFound, jerr)
	case err != nil:
		logger.For(ctx).WithError(err).Error("lookup failed")
		return nil, sendError(c, http.StatusBadGateway, chemjson.NewError(function, err))
	case res == nil:
		return nil, sendError(c, http.StatusBadRequest, &chemjson.Error{Function: function, Message: "missing name parameter"})
	}
	return res, nil
}

func (s *Server) apiCompound(c echo.Context) error {
	res, err := s.runForAPI(c, "apiCompound")
	if res == nil {
		return err
	}
	if res.StructureErr != nil {
		jerr := chemjson.NewError("apiCompound", res.StructureErr)
		jerr.Query = res.Query
		return sendError(c, http.StatusInternalServerError, jerr)
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Response().WriteHeader(http.StatusOK)
	if jerr := chemjson.NewCompound(res.Query, res.Compound, res.Molecule, res.MolBlock).Send(c.Response()); jerr != nil {
		return jerr
	}
	return nil
}

func (s *Server) depict(c echo.Context) error {
	res, err := s.runForAPI(c, "depict")
	if res == nil {
		return err
	}
	if res.StructureErr != nil {
		return sendError(c, http.StatusInternalServerError, chemjson.NewError("depict", res.StructureErr))
	}
	var buf bytes.Buffer
	if err := chemplot.Depict(res.Molecule, res.Compound.Title, &buf); err != nil {
		return sendError(c, http.StatusInternalServerError, chemjson.NewError("depict", err))
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func sendError(c echo.Context, status int, jerr *chemjson.Error) error {
	return c.JSONBlob(status, jerr.Marshal())
}
