package game

import (
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// meetingGame builds an active game mid-meeting with four alive players
func (s *GameServiceTestSuite) meetingGame(phase models.MeetingPhase) *models.Game {
	game := s.newGame(models.GameStatusMeeting)
	s.addPlayers(game, "Alice", "Bob", "Carol", "Dave")
	game.Meeting = &models.Meeting{
		ID:               "test-meeting-id",
		Type:             models.MeetingTypeEmergency,
		ReporterID:       "Alice-id",
		DiscussionEndsAt: s.testTime.Add(100 * time.Second),
		VotingEndsAt:     s.testTime.Add(140 * time.Second),
		Votes:            []*models.Vote{},
		Phase:            phase,
		Active:           true,
	}
	return game
}

func (s *GameServiceTestSuite) TestCallMeeting() {
	s.addPlayers(s.activeGame, "Alice", "Bob")
	s.activeGame.Players[0].VotedFor = "Bob-id"
	s.expectGetGame(s.activeGame)
	s.mockUUID.EXPECT().NewUUID().Return("test-meeting-id")
	s.expectSaveGame()

	out, err := s.gameService.CallMeeting(s.ctx, &CallMeetingInput{
		GameID:     s.testGameID,
		ReporterID: "Alice-id",
		Type:       models.MeetingTypeEmergency,
	})
	s.Require().NoError(err)
	s.Equal(models.GameStatusMeeting, out.Game.Status)
	s.Equal(models.MeetingPhaseDiscussion, out.Meeting.Phase)
	s.True(out.Meeting.Active)
	s.Equal(s.testTime.Add(100*time.Second), out.Meeting.DiscussionEndsAt)
	s.Equal(s.testTime.Add(140*time.Second), out.Meeting.VotingEndsAt)
	s.Equal(1, out.Game.MeetingsCalled)

	// Prior vote markers are cleared for the new meeting
	s.Empty(out.Game.Players[0].VotedFor)
}

func (s *GameServiceTestSuite) TestCallMeetingRejectsWaitingGame() {
	s.addPlayers(s.waitingGame, "Alice")
	s.expectGetGame(s.waitingGame)

	_, err := s.gameService.CallMeeting(s.ctx, &CallMeetingInput{
		GameID:     s.testGameID,
		ReporterID: "Alice-id",
		Type:       models.MeetingTypeEmergency,
	})
	s.Require().ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestCallMeetingEnforcesEmergencyLimit() {
	s.addPlayers(s.activeGame, "Alice", "Bob")
	s.activeGame.MeetingsCalled = 3
	s.expectGetGame(s.activeGame)

	_, err := s.gameService.CallMeeting(s.ctx, &CallMeetingInput{
		GameID:     s.testGameID,
		ReporterID: "Alice-id",
		Type:       models.MeetingTypeEmergency,
	})
	s.Require().ErrorIs(err, ErrMeetingLimitReached)
}

func (s *GameServiceTestSuite) TestCallMeetingDeadBodyReportBypassesLimit() {
	s.addPlayers(s.activeGame, "Alice", "Bob")
	s.activeGame.MeetingsCalled = 3
	s.expectGetGame(s.activeGame)
	s.mockUUID.EXPECT().NewUUID().Return("test-meeting-id")
	s.expectSaveGame()

	out, err := s.gameService.CallMeeting(s.ctx, &CallMeetingInput{
		GameID:           s.testGameID,
		ReporterID:       "Alice-id",
		Type:             models.MeetingTypeDeadBody,
		ReportedPlayerID: "Bob-id",
	})
	s.Require().NoError(err)
	s.Equal("Bob-id", out.Meeting.ReportedPlayerID)

	// Dead-body reports do not count against the emergency cap
	s.Equal(3, out.Game.MeetingsCalled)
}

func (s *GameServiceTestSuite) TestSubmitVote() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.SubmitVote(s.ctx, &SubmitVoteInput{
		GameID:    s.testGameID,
		MeetingID: "test-meeting-id",
		VoterID:   "Alice-id",
		TargetID:  "Bob-id",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Game.Meeting.Votes, 1)
	s.Equal("Alice-id", out.Game.Meeting.Votes[0].PlayerID)
	s.Equal("Bob-id", out.Game.Meeting.Votes[0].TargetID)
	s.Equal("Bob-id", out.Game.FindPlayer("Alice-id").VotedFor)
}

func (s *GameServiceTestSuite) TestSubmitVoteRejectsSecondBallot() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	game.Meeting.Votes = append(game.Meeting.Votes, &models.Vote{
		PlayerID: "Alice-id",
		TargetID: "Bob-id",
	})
	s.expectGetGame(game)

	_, err := s.gameService.SubmitVote(s.ctx, &SubmitVoteInput{
		GameID:    s.testGameID,
		MeetingID: "test-meeting-id",
		VoterID:   "Alice-id",
		TargetID:  "Carol-id",
	})
	s.Require().ErrorIs(err, ErrAlreadyVoted)
}

func (s *GameServiceTestSuite) TestSubmitVoteRejectsDeadVoter() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	game.FindPlayer("Alice-id").IsAlive = false
	s.expectGetGame(game)

	_, err := s.gameService.SubmitVote(s.ctx, &SubmitVoteInput{
		GameID:    s.testGameID,
		MeetingID: "test-meeting-id",
		VoterID:   "Alice-id",
		TargetID:  "Bob-id",
	})
	s.Require().ErrorIs(err, ErrDeadPlayersCannotVote)
}

func (s *GameServiceTestSuite) TestSubmitVoteRejectsDeadTarget() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	game.FindPlayer("Bob-id").IsAlive = false
	s.expectGetGame(game)

	_, err := s.gameService.SubmitVote(s.ctx, &SubmitVoteInput{
		GameID:    s.testGameID,
		MeetingID: "test-meeting-id",
		VoterID:   "Alice-id",
		TargetID:  "Bob-id",
	})
	s.Require().ErrorIs(err, ErrInvalidVoteTarget)
}

func (s *GameServiceTestSuite) TestSubmitVoteRejectsDiscussionPhase() {
	game := s.meetingGame(models.MeetingPhaseDiscussion)
	s.expectGetGame(game)

	_, err := s.gameService.SubmitVote(s.ctx, &SubmitVoteInput{
		GameID:    s.testGameID,
		MeetingID: "test-meeting-id",
		VoterID:   "Alice-id",
		TargetID:  "Bob-id",
	})
	s.Require().ErrorIs(err, ErrMeetingNotInVoting)
}

func (s *GameServiceTestSuite) TestSubmitVoteAllowsSkip() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.SubmitVote(s.ctx, &SubmitVoteInput{
		GameID:    s.testGameID,
		MeetingID: "test-meeting-id",
		VoterID:   "Alice-id",
		TargetID:  models.VoteTargetSkip,
	})
	s.Require().NoError(err)
	s.Equal(models.VoteTargetSkip, out.Game.Meeting.Votes[0].TargetID)
}

func (s *GameServiceTestSuite) TestAdvanceMeetingHoldsDuringDiscussion() {
	game := s.meetingGame(models.MeetingPhaseDiscussion)
	s.expectGetGame(game)

	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(out.Resolved)
	s.Equal(models.MeetingPhaseDiscussion, out.Game.Meeting.Phase)
}

func (s *GameServiceTestSuite) TestAdvanceMeetingOpensVoting() {
	game := s.meetingGame(models.MeetingPhaseDiscussion)
	game.Meeting.DiscussionEndsAt = s.testTime.Add(-time.Second)
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(out.Resolved)
	s.Equal(models.MeetingPhaseVoting, out.Game.Meeting.Phase)
	s.True(out.Game.Meeting.Active)
}

func (s *GameServiceTestSuite) TestAdvanceMeetingResolvesEarlyWhenAllVoted() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	for _, p := range game.Players {
		game.Meeting.Votes = append(game.Meeting.Votes, &models.Vote{
			PlayerID: p.ID,
			TargetID: "Bob-id",
		})
	}
	s.expectGetGame(game)
	s.expectSaveGame()

	// VotingEndsAt is still in the future; the full ballot box resolves anyway
	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(out.Resolved)
	s.Equal("Bob-id", out.EliminatedPlayerID)
	s.False(out.Game.FindPlayer("Bob-id").IsAlive)
	s.Equal(models.GameStatusActive, out.Game.Status)
	s.Equal(models.MeetingPhaseResults, out.Game.Meeting.Phase)
	s.False(out.Game.Meeting.Active)
}

func (s *GameServiceTestSuite) TestAdvanceMeetingTieEliminatesNobody() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	game.Meeting.VotingEndsAt = s.testTime.Add(-time.Second)
	game.Meeting.Votes = []*models.Vote{
		{PlayerID: "Alice-id", TargetID: "Bob-id"},
		{PlayerID: "Bob-id", TargetID: "Alice-id"},
	}
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(out.Resolved)
	s.True(out.Tied)
	s.Empty(out.EliminatedPlayerID)
	for _, p := range out.Game.Players {
		s.True(p.IsAlive)
	}
}

func (s *GameServiceTestSuite) TestAdvanceMeetingSkipMajorityEliminatesNobody() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	game.Meeting.VotingEndsAt = s.testTime.Add(-time.Second)
	game.Meeting.Votes = []*models.Vote{
		{PlayerID: "Alice-id", TargetID: models.VoteTargetSkip},
		{PlayerID: "Bob-id", TargetID: models.VoteTargetSkip},
		{PlayerID: "Carol-id", TargetID: "Dave-id"},
	}
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(out.Resolved)
	s.True(out.Skipped)
	s.Empty(out.EliminatedPlayerID)
	s.True(out.Game.FindPlayer("Dave-id").IsAlive)
}

func (s *GameServiceTestSuite) TestAdvanceMeetingEmptyBallotBoxSkips() {
	game := s.meetingGame(models.MeetingPhaseVoting)
	game.Meeting.VotingEndsAt = s.testTime.Add(-time.Second)
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(out.Resolved)
	s.True(out.Skipped)
}

func (s *GameServiceTestSuite) TestAdvanceMeetingNoopWithoutMeeting() {
	s.expectGetGame(s.activeGame)

	out, err := s.gameService.AdvanceMeeting(s.ctx, &AdvanceMeetingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(out.Resolved)
}
