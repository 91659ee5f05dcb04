package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nevix187/AmongUsIRL/internal/models"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
	gameMocks "github.com/nevix187/AmongUsIRL/internal/services/game/mocks"
	messagingService "github.com/nevix187/AmongUsIRL/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameService *gameMocks.MockService
	handler         *Handler
	server          *httptest.Server
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)

	messaging, err := messagingService.New(&messagingService.Config{Seed: 42})
	s.Require().NoError(err)

	handler, err := New(&Config{
		GameService:      s.mockGameService,
		MessagingService: messaging,
	})
	s.Require().NoError(err)
	s.handler = handler
	s.server = httptest.NewServer(handler.Routes())
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) post(path string, body any) *http.Response {
	encoded, err := json.Marshal(body)
	s.Require().NoError(err)
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(encoded))
	s.Require().NoError(err)
	return resp
}

func (s *HandlerTestSuite) TestCreateGame() {
	s.mockGameService.EXPECT().
		CreateGame(gomock.Any(), &gameService.CreateGameInput{
			HostID:        "host-id",
			ImpostorCount: 1,
			AdminPassword: "1871",
		}).
		Return(&gameService.CreateGameOutput{
			Game: &models.Game{ID: "game-id", GameCode: "SABCDE", Status: models.GameStatusWaiting},
		}, nil)

	resp := s.post("/api/games", createGameRequest{
		HostID:        "host-id",
		ImpostorCount: 1,
		AdminPassword: "1871",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusCreated, resp.StatusCode)

	var game models.Game
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&game))
	s.Equal("SABCDE", game.GameCode)
}

func (s *HandlerTestSuite) TestCreateGameWrongPassword() {
	s.mockGameService.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrInvalidAdminPassword)

	resp := s.post("/api/games", createGameRequest{AdminPassword: "wrong"})
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlerTestSuite) TestJoinGameIncludesAnnouncement() {
	s.mockGameService.EXPECT().
		JoinGame(gomock.Any(), &gameService.JoinGameInput{
			GameCode:   "SABCDE",
			PlayerName: "Alice",
		}).
		Return(&gameService.JoinGameOutput{
			Game:   &models.Game{ID: "game-id"},
			Player: &models.Player{ID: "player-id", Name: "Alice"},
		}, nil)

	resp := s.post("/api/join", joinGameRequest{GameCode: "SABCDE", PlayerName: "Alice"})
	defer resp.Body.Close()
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body joinGameResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Alice", body.Player.Name)
	s.Contains(body.Announcement, "Alice")
}

func (s *HandlerTestSuite) TestJoinGameDuplicateNameConflicts() {
	s.mockGameService.EXPECT().
		JoinGame(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrDuplicatePlayerName)

	resp := s.post("/api/join", joinGameRequest{GameCode: "SABCDE", PlayerName: "Alice"})
	defer resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetGameNotFound() {
	s.mockGameService.EXPECT().
		GetGame(gomock.Any(), &gameService.GetGameInput{GameID: "missing"}).
		Return(nil, gameService.ErrGameNotFound)

	resp, err := http.Get(s.server.URL + "/api/games/missing")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlerTestSuite) TestSubmitVote() {
	s.mockGameService.EXPECT().
		SubmitVote(gomock.Any(), &gameService.SubmitVoteInput{
			GameID:    "game-id",
			MeetingID: "meeting-id",
			VoterID:   "voter-id",
			TargetID:  "target-id",
		}).
		Return(&gameService.SubmitVoteOutput{Game: &models.Game{ID: "game-id"}}, nil)

	resp := s.post("/api/games/game-id/meetings/meeting-id/votes", submitVoteRequest{
		VoterID:  "voter-id",
		TargetID: "target-id",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerTestSuite) TestCompleteTaskBlockedDuringSabotage() {
	s.mockGameService.EXPECT().
		CompleteTask(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrSabotageActive)

	req, err := http.NewRequest(http.MethodPost,
		s.server.URL+"/api/games/game-id/devices/device-id/tasks/task-id/complete", nil)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *HandlerTestSuite) TestWSRequiresGameParam() {
	resp, err := http.Get(s.server.URL + "/ws")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestRepositoryFaultIsInternalError() {
	s.mockGameService.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	resp, err := http.Get(s.server.URL + "/api/games/game-id")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
}
