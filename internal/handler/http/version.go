// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppInfo(r.Context())

	if _, err := utils.WriteJSON(w, buildInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version response failed")
	}
}
