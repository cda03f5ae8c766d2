package email

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/signupmail/common"
	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/dto"
	"github.com/joshu-sajeev/signupmail/internal/mocks"
	"github.com/joshu-sajeev/signupmail/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmailHandler_SendSignUpEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{"subject":"Welcome","body":"Hi there","recipient":"user@example.com"}`

	tests := []struct {
		name           string
		method         string
		body           string
		setupMock      func(*mocks.EmailServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "GET is rejected",
			method:         http.MethodGet,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"success":false,"message":"Method not allowed. Use POST."}`,
		},
		{
			name:           "PUT with a valid body is still rejected",
			method:         http.MethodPut,
			body:           validBody,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"success":false,"message":"Method not allowed. Use POST."}`,
		},
		{
			name:           "DELETE is rejected",
			method:         http.MethodDelete,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"success":false,"message":"Method not allowed. Use POST."}`,
		},
		{
			name:           "missing body and recipient",
			method:         http.MethodPost,
			body:           `{"subject":"Welcome"}`,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Missing required fields."}`,
		},
		{
			name:           "missing subject",
			method:         http.MethodPost,
			body:           `{"body":"Hi there","recipient":"user@example.com"}`,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Missing required fields."}`,
		},
		{
			name:           "empty object",
			method:         http.MethodPost,
			body:           `{}`,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Missing required fields."}`,
		},
		{
			name:           "upper-case keys count as missing",
			method:         http.MethodPost,
			body:           `{"SUBJECT":"Welcome","Body":"Hi there","RECIPIENT":"user@example.com"}`,
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Missing required fields."}`,
		},
		{
			name:           "invalid request body JSON",
			method:         http.MethodPost,
			body:           "{invalid json}",
			setupMock:      func(m *mocks.EmailServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Missing required fields."}`,
		},
		{
			name:   "successful send",
			method: http.MethodPost,
			body:   validBody,
			setupMock: func(m *mocks.EmailServiceMock) {
				m.On("SendSignUpEmail", mock.Anything, &dto.SendEmailRequest{
					Subject:   "Welcome",
					Body:      "Hi there",
					Recipient: "user@example.com",
				}).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Email sent successfully"}`,
		},
		{
			name:   "transport failure",
			method: http.MethodPost,
			body:   validBody,
			setupMock: func(m *mocks.EmailServiceMock) {
				m.On("SendSignUpEmail", mock.Anything, mock.Anything).
					Return(common.NewAPIError(http.StatusInternalServerError, config.MsgSendFailed)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to send email"}`,
		},
		{
			name:   "untyped service error does not leak",
			method: http.MethodPost,
			body:   validBody,
			setupMock: func(m *mocks.EmailServiceMock) {
				m.On("SendSignUpEmail", mock.Anything, mock.Anything).
					Return(errors.New("535 5.7.8 Username and Password not accepted")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to send email"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.EmailServiceMock)
			tt.setupMock(mockService)

			r := gin.New()
			r.Use(middleware.ErrorHandler())
			handler := NewEmailHandler(mockService)
			r.Any(config.RouteSendSignUpEmail, handler.SendSignUpEmail)

			req := httptest.NewRequest(tt.method, config.RouteSendSignUpEmail, bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch for test: %s", tt.name)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
			if tt.expectedStatus == http.StatusBadRequest || tt.expectedStatus == http.StatusMethodNotAllowed {
				mockService.AssertNotCalled(t, "SendSignUpEmail", mock.Anything, mock.Anything)
			}
		})
	}
}
