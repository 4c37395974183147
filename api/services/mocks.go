package services

import (
	"github.com/stretchr/testify/mock"
)

type MockPushClient struct {
	mock.Mock
}

func (m *MockPushClient) CreatePush(accessToken, title, body string) error {
	args := m.Called(accessToken, title, body)
	return args.Error(0)
}
