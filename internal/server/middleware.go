/*
 * middleware.go, part of chemview.
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
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rmera/chemview/internal/logger"
	"github.com/rmera/chemview/internal/metrics"
)

// requestID gives every request an id, taken from the X-Request-Id header if the client
// sent one, and puts it in the request context for the logger.
func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.ContextWithID(req.Context(), id)))
		},
	})
}

// requestLogger logs every request and records it in the HTTP metrics.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			status := c.Response().Status
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			took := time.Since(start)
			metrics.HttpRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			metrics.HttpRequestDuration.WithLabelValues(path).Observe(took.Seconds())

			logger.For(req.Context()).WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"query":  req.URL.Query(),
				"remote": c.RealIP(),
				"agent":  req.UserAgent(),
				"status": status,
				"took":   took,
			}).Info("http.request")
			return nil
		}
	}
}
