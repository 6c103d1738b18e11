// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package webui_service

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/console"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/configapi"
)

// Handlers exposes the console actions of one App over HTTP.
type Handlers struct {
	app *console.App
}

type StatusResponse struct {
	Backend        string `json:"backend"`
	CurrentSection string `json:"currentSection"`
	ModalOpen      bool   `json:"modalOpen"`
}

type ToggleEditRequest struct {
	Enable *bool `json:"enable"`
}

// writeError maps console errors to HTTP statuses.
func writeError(c *gin.Context, err error) {
	var (
		verr       *configapi.ValidationError
		unknownTyp *configapi.UnknownTypeError
		unknownSec *console.UnknownSectionError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "errors": verr.Errors})
	case errors.As(err, &unknownTyp), errors.As(err, &unknownSec):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, console.ErrNoDetails):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apiclient.StatusCode(err) == http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func wildcardName(c *gin.Context) string {
	return strings.Trim(c.Param("name"), "/")
}

func bindForm(c *gin.Context) (configapi.Form, bool) {
	form := configapi.Form{}
	if err := c.ShouldBindJSON(&form); err != nil {
		logger.GinLog.Warnf("invalid form body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return nil, false
	}
	return form, true
}

// GetStatus godoc
//
// @Description Return the console status
// @Tags        Console
// @Produce     json
// @Success     200  {object}  StatusResponse
// @Router      /console/v1/status  [get]
func (h *Handlers) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Backend:        h.app.Client.BaseUrl(),
		CurrentSection: h.app.CurrentSection(),
		ModalOpen:      h.app.Modal.State().Open,
	})
}

// GetTypes godoc
//
// @Description Return the entity types managed by the console
// @Tags        Console
// @Produce     json
// @Success     200  {array}  string
// @Router      /console/v1/types  [get]
func (h *Handlers) GetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Registry.Types())
}

// ShowSection godoc
//
// @Description Navigate to a section and load its data
// @Tags        Sections
// @Produce     json
// @Param       section  path  string  true  "Section name"
// @Success     200  {object}  console.SectionView
// @Failure     404  {object}  nil  "Unknown section"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/sections/{section}  [get]
func (h *Handlers) ShowSection(c *gin.Context) {
	section := c.Param("section")
	logger.GinLog.Infof("received a show section request: %s", section)
	view, err := h.app.ShowSection(c.Request.Context(), section)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetModal godoc
//
// @Description Return the create/edit dialog state
// @Tags        Modal
// @Produce     json
// @Success     200  {object}  console.ModalState
// @Router      /console/v1/modal  [get]
func (h *Handlers) GetModal(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Modal.State())
}

// ShowCreateForm godoc
//
// @Description Open the dialog in create mode
// @Tags        Modal
// @Produce     json
// @Param       type  path  string  true  "Entity type"
// @Success     200  {object}  console.ModalState
// @Failure     404  {object}  nil  "Unknown type"
// @Router      /console/v1/modal/create/{type}  [post]
func (h *Handlers) ShowCreateForm(c *gin.Context) {
	state, err := h.app.Modal.ShowCreateForm(c.Request.Context(), c.Param("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// EditItem godoc
//
// @Description Open the dialog in edit mode with the current values of an item
// @Tags        Modal
// @Produce     json
// @Param       type  path  string  true  "Entity type"
// @Param       name  path  string  true  "Item name"
// @Success     200  {object}  console.ModalState
// @Failure     404  {object}  nil  "Unknown type or item"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/modal/edit/{type}/{name}  [post]
func (h *Handlers) EditItem(c *gin.Context) {
	name := wildcardName(c)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
		return
	}
	state, err := h.app.Modal.EditItem(c.Request.Context(), c.Param("type"), name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveItem godoc
//
// @Description Validate the dialog form and create or update the item
// @Tags        Modal
// @Accept      json
// @Produce     json
// @Param       form  body  object  true  "Flat form values keyed by field id"
// @Success     200  {object}  console.ListView
// @Failure     400  {object}  nil  "Validation failed"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/modal/save  [post]
func (h *Handlers) SaveItem(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	list, err := h.app.Modal.SaveItem(c.Request.Context(), form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// HideModal godoc
//
// @Description Close the dialog
// @Tags        Modal
// @Success     204
// @Router      /console/v1/modal/hide  [post]
func (h *Handlers) HideModal(c *gin.Context) {
	h.app.Modal.Hide()
	c.Status(http.StatusNoContent)
}

// DeleteItem godoc
//
// @Description Delete an item and reload its list
// @Tags        Items
// @Produce     json
// @Param       type  path  string  true  "Entity type"
// @Param       name  path  string  true  "Item name"
// @Success     200  {object}  console.ListView
// @Failure     404  {object}  nil  "Unknown type or item"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/items/{type}/{name}  [delete]
func (h *Handlers) DeleteItem(c *gin.Context) {
	name := wildcardName(c)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
		return
	}
	logger.GinLog.Infof("received a delete request for %s %s", c.Param("type"), name)
	list, err := h.app.Modal.DeleteItem(c.Request.Context(), c.Param("type"), name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetDetails godoc
//
// @Description Return the item shown in the details view
// @Tags        Details
// @Produce     json
// @Success     200  {object}  console.DetailsState
// @Router      /console/v1/details  [get]
func (h *Handlers) GetDetails(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Details.State())
}

// ShowDetails godoc
//
// @Description Load an item into the details view
// @Tags        Details
// @Produce     json
// @Param       type  path  string  true  "Entity type"
// @Param       name  path  string  true  "Item name"
// @Success     200  {object}  console.DetailsState
// @Failure     404  {object}  nil  "Unknown type or item"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/details/{type}/{name}  [get]
func (h *Handlers) ShowDetails(c *gin.Context) {
	name := wildcardName(c)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
		return
	}
	state, err := h.app.Details.ShowDetails(c.Request.Context(), c.Param("type"), name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ToggleEdit godoc
//
// @Description Switch the details view between view and edit mode
// @Tags        Details
// @Accept      json
// @Produce     json
// @Param       request  body  ToggleEditRequest  false  "Mode to set; omitted flips the mode"
// @Success     200  {object}  console.DetailsState
// @Failure     400  {object}  nil  "No item loaded"
// @Router      /console/v1/details/edit  [post]
func (h *Handlers) ToggleEdit(c *gin.Context) {
	var req ToggleEditRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}
	state, err := h.app.Details.ToggleEdit(req.Enable)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveDetails godoc
//
// @Description Save the edited item shown in the details view
// @Tags        Details
// @Accept      json
// @Produce     json
// @Param       form  body  object  true  "Flat form values keyed by field id"
// @Success     200  {object}  console.DetailsState
// @Failure     400  {object}  nil  "Validation failed"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/details/save  [post]
func (h *Handlers) SaveDetails(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	state, err := h.app.Details.SaveEdit(c.Request.Context(), form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// DeleteFromDetails godoc
//
// @Description Delete the item shown in the details view and go back to its list
// @Tags        Details
// @Produce     json
// @Success     200  {object}  console.SectionView
// @Failure     400  {object}  nil  "No item loaded"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/details  [delete]
func (h *Handlers) DeleteFromDetails(c *gin.Context) {
	view, err := h.app.Details.DeleteFromDetails(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GoToSubscriberPage godoc
//
// @Description Load a page of the subscriber list
// @Tags        Subscribers
// @Produce     json
// @Param       page  path  int  true  "Page number, clamped to 1"
// @Success     200  {object}  console.ListView
// @Failure     400  {object}  nil  "Invalid page"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/subscribers/page/{page}  [get]
func (h *Handlers) GoToSubscriberPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
		return
	}
	items, err := h.app.Subscribers.GoToPage(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscriberList(h.app, items))
}

// ApplySubscriberFilters godoc
//
// @Description Filter the subscriber list and go back to its first page
// @Tags        Subscribers
// @Accept      json
// @Produce     json
// @Param       filters  body  configapi.Filters  true  "Filters"
// @Success     200  {object}  console.ListView
// @Failure     400  {object}  nil  "Invalid body"
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/subscribers/filters  [post]
func (h *Handlers) ApplySubscriberFilters(c *gin.Context) {
	var filters configapi.Filters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	items, err := h.app.Subscribers.ApplyFilters(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscriberList(h.app, items))
}

// ClearSubscriberFilters godoc
//
// @Description Remove the subscriber list filters
// @Tags        Subscribers
// @Produce     json
// @Success     200  {object}  console.ListView
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/subscribers/filters  [delete]
func (h *Handlers) ClearSubscriberFilters(c *gin.Context) {
	items, err := h.app.Subscribers.ClearFilters(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscriberList(h.app, items))
}

func subscriberList(app *console.App, items []any) console.ListView {
	meta := app.Subscribers.Meta()
	return console.ListView{
		Type:  app.Subscribers.Type(),
		Table: app.Subscribers.Render(items),
		Meta:  &meta,
	}
}

// GetDeviceGroupOptions godoc
//
// @Description Return the device groups selectable on a network slice
// @Tags        Options
// @Produce     json
// @Success     200  {array}  configapi.Option
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/options/device-groups  [get]
func (h *Handlers) GetDeviceGroupOptions(c *gin.Context) {
	names, err := h.app.DeviceGroups.Names(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	options := make([]configapi.Option, 0, len(names))
	for _, name := range names {
		options = append(options, configapi.Option{Value: name, Label: name})
	}
	c.JSON(http.StatusOK, options)
}

// GetK4KeyOptions godoc
//
// @Description Return the K4 keys selectable on a subscriber
// @Tags        Options
// @Produce     json
// @Success     200  {array}  configapi.Option
// @Failure     502  {object}  nil  "Backend error"
// @Router      /console/v1/options/k4-keys  [get]
func (h *Handlers) GetK4KeyOptions(c *gin.Context) {
	options, err := h.app.K4.Options(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// RunAdminAction godoc
//
// @Description Trigger a key management action on the backend
// @Tags        Admin
// @Produce     json
// @Param       action  path  string  true  "sync-key, check-k4-life or k4-rotation"
// @Success     200  {object}  console.AdminResult
// @Failure     404  {object}  nil  "Unknown action"
// @Failure     502  {object}  console.AdminResult  "Backend error"
// @Router      /console/v1/admin/{action}  [post]
func (h *Handlers) RunAdminAction(c *gin.Context) {
	action, err := apiclient.ParseSyncAction(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	result, err := h.app.RunAdmin(c.Request.Context(), action)
	if err != nil {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetNotifications godoc
//
// @Description Return the recent notifications, oldest first
// @Tags        Console
// @Produce     json
// @Success     200  {array}  console.Notification
// @Router      /console/v1/notifications  [get]
func (h *Handlers) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Notifier.List())
}
