// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/service"
)

func humanizeSyncError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Сессия недействительна, требуется повторный вход"
	case errors.Is(err, adapter.ErrInvitingUserRemoved):
		return "Владелец группы удалил свой аккаунт"
	case errors.Is(err, service.ErrTooManyRestarts):
		return "Группа слишком часто меняется на сервере, повтор позже"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
