// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package webui_service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/webconsole-ui/backend/console"
	"github.com/omec-project/webconsole-ui/backend/logger"
)

const ConsoleApiBase = "/console/v1"

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// AddConsoleService registers the console actions under /console/v1.
func AddConsoleService(engine *gin.Engine, app *console.App) *gin.RouterGroup {
	group := engine.Group(ConsoleApiBase)
	h := &Handlers{app: app}
	for _, route := range h.routes() {
		switch route.Method {
		case http.MethodGet:
			group.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			group.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			group.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			group.DELETE(route.Pattern, route.HandlerFunc)
		default:
			logger.InitLog.Warnf("route %s has unsupported method %s", route.Name, route.Method)
		}
	}
	return group
}

func (h *Handlers) routes() Routes {
	return Routes{
		{"GetStatus", http.MethodGet, "/status", h.GetStatus},
		{"GetTypes", http.MethodGet, "/types", h.GetTypes},
		{"ShowSection", http.MethodGet, "/sections/:section", h.ShowSection},
		{"GetModal", http.MethodGet, "/modal", h.GetModal},
		{"ShowCreateForm", http.MethodPost, "/modal/create/:type", h.ShowCreateForm},
		{"EditItem", http.MethodPost, "/modal/edit/:type/*name", h.EditItem},
		{"SaveItem", http.MethodPost, "/modal/save", h.SaveItem},
		{"HideModal", http.MethodPost, "/modal/hide", h.HideModal},
		{"DeleteItem", http.MethodDelete, "/items/:type/*name", h.DeleteItem},
		{"GetDetails", http.MethodGet, "/details", h.GetDetails},
		{"ShowDetails", http.MethodGet, "/details/:type/*name", h.ShowDetails},
		{"ToggleEdit", http.MethodPost, "/details/edit", h.ToggleEdit},
		{"SaveDetails", http.MethodPost, "/details/save", h.SaveDetails},
		{"DeleteFromDetails", http.MethodDelete, "/details", h.DeleteFromDetails},
		{"GoToSubscriberPage", http.MethodGet, "/subscribers/page/:page", h.GoToSubscriberPage},
		{"ApplySubscriberFilters", http.MethodPost, "/subscribers/filters", h.ApplySubscriberFilters},
		{"ClearSubscriberFilters", http.MethodDelete, "/subscribers/filters", h.ClearSubscriberFilters},
		{"GetDeviceGroupOptions", http.MethodGet, "/options/device-groups", h.GetDeviceGroupOptions},
		{"GetK4KeyOptions", http.MethodGet, "/options/k4-keys", h.GetK4KeyOptions},
		{"RunAdminAction", http.MethodPost, "/admin/:action", h.RunAdminAction},
		{"GetNotifications", http.MethodGet, "/notifications", h.GetNotifications},
	}
}
