package order_post_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/order_post"
	"backoffice/internal/service/order"
)

type mock struct {
	*MockService
	*MockhandlerLogger
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockService:       NewMockService(ctrl),
		MockhandlerLogger: NewMockhandlerLogger(ctrl),
	}
}

func TestOrderPostHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Успешное оформление продажи",
			requestBody: `{
				"customerId": 5,
				"items": [{"productId": 10, "quantity": 2}],
				"usePoints": true,
				"paymentMethod": "CARD"
			}`,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, orderCreate entities.OrderCreate) (*entities.SellingOrder, error) {
						assert.NotNil(t, orderCreate.CustomerID)
						assert.True(t, orderCreate.UsePoints)
						assert.Equal(t, "CARD", orderCreate.PaymentMethod)
						return &entities.SellingOrder{
							ID:           1,
							TotalAmount:  1000000,
							UsedPoints:   1000,
							EarnedPoints: 9990,
							FinalAmount:  999000,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{
				"status": 201,
				"success": true,
				"payload": {
					"id": 1,
					"totalAmount": 1000000,
					"usedPoints": 1000,
					"earnedPoints": 9990,
					"finalAmount": 999000
				}
			}`,
		},
		{
			name:           "Невалидный JSON в теле запроса",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Заказ без позиций",
			requestBody: `{"items": []}`,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, order.ErrMissingRequiredFields)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Нулевое количество в позиции",
			requestBody: `{"items": [{"productId": 10, "quantity": 0}]}`,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, order.ErrInvalidQuantity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Несуществующий покупатель",
			requestBody: `{"customerId": 404, "items": [{"productId": 10, "quantity": 1}], "usePoints": true}`,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, order.ErrCustomerNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Несуществующий товар",
			requestBody: `{"items": [{"productId": 404, "quantity": 1}]}`,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, order.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Ошибка сервиса",
			requestBody: `{"items": [{"productId": 10, "quantity": 1}]}`,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			m := newMock(ctrl)

			m.MockhandlerLogger.EXPECT().
				With(gomock.Any()).
				Return(nil).
				AnyTimes()

			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			handler := order_post.New(m.MockhandlerLogger, m.MockService)

			req := httptest.NewRequest(http.MethodPost, "/selling_orders", bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "unexpected status code")

			if tt.expectedBody != "" {
				require.JSONEq(t, tt.expectedBody, w.Body.String(), "unexpected response body")
			}
		})
	}
}
