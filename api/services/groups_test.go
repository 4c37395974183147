package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jscott1989/push-notifications-service/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterGroupService(t *testing.T) {

	svc, _ := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_, _ = svc.Registry.RegisterUser("user2", "code2")

	requestBody := []byte(`{"groupId": "group1", "users": ["user1", "user2"]}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewReader(requestBody))
	w := httptest.NewRecorder()

	RegisterGroupService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "/v1/groups/group1", res.Header.Get("Location"))

	body, _ := io.ReadAll(res.Body)
	var members []string
	assert.NoError(t, json.Unmarshal(body, &members))
	assert.Equal(t, []string{"user1", "user2"}, members)
}

func TestRegisterGroupServiceUnknownMember(t *testing.T) {

	svc, _ := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")

	requestBody := []byte(`{"groupId": "group1", "users": ["user1", "nobody"]}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewReader(requestBody))
	w := httptest.NewRecorder()

	RegisterGroupService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "nobody")

	// The group must not exist after the failed registration
	assert.Empty(t, svc.Registry.ListGroups())
}

func TestRegisterGroupServiceDuplicate(t *testing.T) {

	svc, _ := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1"})

	requestBody := []byte(`{"groupId": "group1", "users": ["user1"]}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewReader(requestBody))
	w := httptest.NewRecorder()

	RegisterGroupService(svc, w, r)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestRegisterGroupServiceMissingField(t *testing.T) {

	svc, _ := newTestService()

	requestBody := []byte(`{"groupId": "group1"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewReader(requestBody))
	w := httptest.NewRecorder()

	RegisterGroupService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "missing required data 'users'")
}

func TestListGroupsService(t *testing.T) {

	svc, _ := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1"})

	r := httptest.NewRequest(http.MethodGet, "/v1/groups", nil)
	w := httptest.NewRecorder()

	ListGroupsService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	var groups [][]string
	assert.NoError(t, json.Unmarshal(body, &groups))
	assert.Equal(t, [][]string{{"user1"}}, groups)
}

func TestGetGroupService(t *testing.T) {

	svc, _ := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1"})

	r := httptest.NewRequest(http.MethodGet, "/v1/groups/group1", nil)
	r = mux.SetURLVars(r, map[string]string{"group-id": "group1"})
	w := httptest.NewRecorder()

	GetGroupService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	var members []string
	assert.NoError(t, json.Unmarshal(body, &members))
	assert.Equal(t, []string{"user1"}, members)
}

func TestGetGroupServiceNotFound(t *testing.T) {

	svc, _ := newTestService()

	r := httptest.NewRequest(http.MethodGet, "/v1/groups/missing", nil)
	r = mux.SetURLVars(r, map[string]string{"group-id": "missing"})
	w := httptest.NewRecorder()

	GetGroupService(svc, w, r)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestSendGroupNotificationService(t *testing.T) {

	svc, mockPush := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1"})

	mockPush.On("CreatePush", "code1", "t", "b").Return(nil)

	requestBody := []byte(`{"title": "t", "body": "b"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups/group1/notifications", bytes.NewReader(requestBody))
	r = mux.SetURLVars(r, map[string]string{"group-id": "group1"})
	w := httptest.NewRecorder()

	SendGroupNotificationService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	var result models.NotificationErrors
	assert.NoError(t, json.Unmarshal(body, &result))
	assert.Empty(t, result.Errors)

	user, _ := svc.Registry.GetUser("user1")
	assert.Equal(t, 1, user.NotificationsPushed)

	mockPush.AssertExpectations(t)
}

func TestSendGroupNotificationServiceAllDeliveriesFail(t *testing.T) {

	svc, mockPush := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_, _ = svc.Registry.RegisterUser("user2", "code2")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1", "user2"})

	mockPush.On("CreatePush", "code1", "t", "b").Return(&PushbulletError{Message: "down"})
	mockPush.On("CreatePush", "code2", "t", "b").Return(&PushbulletError{Message: "down"})

	requestBody := []byte(`{"title": "t", "body": "b"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups/group1/notifications", bytes.NewReader(requestBody))
	r = mux.SetURLVars(r, map[string]string{"group-id": "group1"})
	w := httptest.NewRecorder()

	SendGroupNotificationService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	var result models.NotificationErrors
	assert.NoError(t, json.Unmarshal(body, &result))

	// One error per distinct recipient, and no counter moved
	assert.Len(t, result.Errors, 2)
	assert.ElementsMatch(t, []string{"user1: Pushbullet error", "user2: Pushbullet error"}, result.Errors)

	user1, _ := svc.Registry.GetUser("user1")
	user2, _ := svc.Registry.GetUser("user2")
	assert.Equal(t, 0, user1.NotificationsPushed)
	assert.Equal(t, 0, user2.NotificationsPushed)
}

func TestSendGroupNotificationServicePartialFailure(t *testing.T) {

	svc, mockPush := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_, _ = svc.Registry.RegisterUser("user2", "code2")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1", "user2"})

	mockPush.On("CreatePush", "code1", "t", "b").Return(&PushbulletError{Message: "down"})
	mockPush.On("CreatePush", "code2", "t", "b").Return(nil)

	requestBody := []byte(`{"title": "t", "body": "b"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups/group1/notifications", bytes.NewReader(requestBody))
	r = mux.SetURLVars(r, map[string]string{"group-id": "group1"})
	w := httptest.NewRecorder()

	SendGroupNotificationService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	var result models.NotificationErrors
	assert.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, []string{"user1: Pushbullet error"}, result.Errors)

	// One recipient's failure does not block delivery to the other
	user2, _ := svc.Registry.GetUser("user2")
	assert.Equal(t, 1, user2.NotificationsPushed)
}

func TestSendGroupNotificationServiceGroupNotFound(t *testing.T) {

	svc, mockPush := newTestService()

	requestBody := []byte(`{"title": "t", "body": "b"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups/missing/notifications", bytes.NewReader(requestBody))
	r = mux.SetURLVars(r, map[string]string{"group-id": "missing"})
	w := httptest.NewRecorder()

	SendGroupNotificationService(svc, w, r)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	mockPush.AssertNotCalled(t, "CreatePush")
}

func TestSendGroupNotificationServiceMissingField(t *testing.T) {

	svc, mockPush := newTestService()
	_, _ = svc.Registry.RegisterUser("user1", "code1")
	_ = svc.Registry.RegisterGroup("group1", []string{"user1"})

	requestBody := []byte(`{"body": "b"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/groups/group1/notifications", bytes.NewReader(requestBody))
	r = mux.SetURLVars(r, map[string]string{"group-id": "group1"})
	w := httptest.NewRecorder()

	SendGroupNotificationService(svc, w, r)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	mockPush.AssertNotCalled(t, "CreatePush")
}
