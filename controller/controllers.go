package controller

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/akinwale/sms-blast/gateway"
	"github.com/akinwale/sms-blast/ingest"
	"github.com/akinwale/sms-blast/log"
	"github.com/akinwale/sms-blast/service"
	"github.com/akinwale/sms-blast/service/dto"
	"github.com/labstack/echo/v4"
)

const ownerIdKey = "ownerId"

//GetAuthMiddleware resolves the bearer token to the owner id for protected routes
func GetAuthMiddleware(srv service.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerId, err := srv.Authenticate(bearerToken(c))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
			}
			c.Set(ownerIdKey, ownerId)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}

func ownerId(c echo.Context) uint32 {
	id, _ := c.Get(ownerIdKey).(uint32)
	return id
}

//writeError maps service errors to the {error} envelope with a proper status
func writeError(c echo.Context, err error) error {
	switch err.(type) {
	case *service.InvalidPayloadErr, *ingest.FormatErr, *ingest.ValidationErr, *gateway.InvalidPhoneErr:
		return c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case *service.UnauthorizedErr:
		return c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case *gateway.ConfigErr, *gateway.SendErr:
		return c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}

	if err.Error() == "not found" {
		return c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	}

	log.Error.Println(err)
	return c.JSON(http.StatusInternalServerError, dto.Error{Error: "System malfunction. Please, try later"})
}

// SignUp godoc
// @Summary Sign up
// @Description Registers a user and returns a session token
// @Accept json
// @Produce json
// @Param credentials body dto.Credentials true "Credentials"
// @Success 200 {object} dto.Token
// @Failure 400 {object} dto.Error
// @Router /auth/signup [post]
func GetSignUpFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		creds := new(dto.Credentials)
		if err := c.Bind(creds); err != nil {
			return err
		}

		token, err := srv.SignUp(*creds)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, token)
	}
}

// SignIn godoc
// @Summary Sign in
// @Description Verifies credentials and returns a session token
// @Accept json
// @Produce json
// @Param credentials body dto.Credentials true "Credentials"
// @Success 200 {object} dto.Token
// @Failure 401 {object} dto.Error
// @Router /auth/signin [post]
func GetSignInFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		creds := new(dto.Credentials)
		if err := c.Bind(creds); err != nil {
			return err
		}

		token, err := srv.SignIn(*creds)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, token)
	}
}

// SignOut godoc
// @Summary Sign out
// @Description Invalidates the current session token
// @Success 204
// @Failure 401 {object} dto.Error
// @Router /auth/signout [post]
func GetSignOutFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := srv.SignOut(bearerToken(c)); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// UploadContacts godoc
// @Summary Upload contacts
// @Description Ingests a CSV batch of contacts for the signed-in owner
// @Accept plain
// @Produce json
// @Param csv body string true "CSV text with a phone column"
// @Success 200 {object} dto.UploadResult
// @Failure 400 {object} dto.Error
// @Router /contacts [post]
func GetUploadContactsFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := ioutil.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		result, err := srv.UploadContacts(ownerId(c), string(body))
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// PendingContacts godoc
// @Summary List pending contacts
// @Description Lists the owner's unsent contacts, most recent first
// @Produce json
// @Success 200 {array} dto.Contact
// @Router /contacts/pending [get]
func GetPendingContactsFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		contacts, err := srv.GetPendingContacts(ownerId(c))
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, contacts)
	}
}

// SaveTemplate godoc
// @Summary Save template
// @Description Stores a message template with {{name}}, {{amount}} and {{phone}} placeholders
// @Accept json
// @Produce json
// @Param template body dto.NewTemplate true "Template"
// @Success 200 {object} dto.Id
// @Failure 400 {object} dto.Error
// @Router /templates [post]
func GetSaveTemplateFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		tmpl := new(dto.NewTemplate)
		if err := c.Bind(tmpl); err != nil {
			return err
		}

		id, err := srv.SaveTemplate(ownerId(c), *tmpl)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, id)
	}
}

// Templates godoc
// @Summary List templates
// @Description Lists the owner's templates, most recent first
// @Produce json
// @Success 200 {array} dto.Template
// @Router /templates [get]
func GetTemplatesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		templates, err := srv.GetTemplates(ownerId(c))
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, templates)
	}
}

// Broadcast godoc
// @Summary Broadcast a template
// @Description Sends the chosen template to every pending contact of the owner
// @Accept json
// @Produce json
// @Param broadcast body dto.BroadcastRequest true "Broadcast"
// @Success 200 {object} dto.BroadcastResult
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /broadcasts [post]
func GetBroadcastFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.BroadcastRequest)
		if err := c.Bind(req); err != nil {
			return err
		}

		result, err := srv.Broadcast(ownerId(c), req.TemplateId)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// BroadcastProgress godoc
// @Summary Broadcast progress
// @Description Reports the state of the owner's latest broadcast
// @Produce json
// @Success 200 {object} dto.BroadcastProgress
// @Router /broadcasts/progress [get]
func GetProgressFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, srv.GetProgress(ownerId(c)))
	}
}

// SendSms godoc
// @Summary Send a single sms
// @Description Delivers one ad-hoc message through the gateway
// @Accept json
// @Produce json
// @Param sms body dto.SingleSend true "Message"
// @Success 200 {object} dto.SendResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /sms [post]
func GetSendSmsFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		msg := new(dto.SingleSend)
		if err := c.Bind(msg); err != nil {
			return err
		}

		resp, err := srv.SendOne(*msg)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
