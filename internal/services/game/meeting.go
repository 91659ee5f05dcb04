package game

import (
	"context"
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// CallMeeting opens a meeting and moves the game to the meeting state.
// Emergency meetings are capped by Settings.MaxMeetings; dead-body
// reports are never blocked.
func (s *service) CallMeeting(ctx context.Context, input *CallMeetingInput) (*CallMeetingOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusActive {
		return nil, ErrInvalidGameState
	}

	if game.FindPlayer(input.ReporterID) == nil {
		return nil, ErrPlayerNotFound
	}

	if input.Type == models.MeetingTypeEmergency {
		if game.Settings.MaxMeetings > 0 && game.MeetingsCalled >= game.Settings.MaxMeetings {
			return nil, ErrMeetingLimitReached
		}
		game.MeetingsCalled++
	}

	now := s.config.Clock.Now()
	discussionEndsAt := now.Add(time.Duration(game.Settings.DiscussionTime) * time.Second)
	votingEndsAt := discussionEndsAt.Add(time.Duration(game.Settings.VotingTime) * time.Second)

	meeting := &models.Meeting{
		ID:               s.config.UUIDGenerator.NewUUID(),
		Type:             input.Type,
		ReporterID:       input.ReporterID,
		ReportedPlayerID: input.ReportedPlayerID,
		DiscussionEndsAt: discussionEndsAt,
		VotingEndsAt:     votingEndsAt,
		Votes:            []*models.Vote{},
		Phase:            models.MeetingPhaseDiscussion,
		Active:           true,
	}

	for _, p := range game.Players {
		p.VotedFor = ""
	}

	game.Meeting = meeting
	game.Status = models.GameStatusMeeting

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &CallMeetingOutput{Game: game, Meeting: meeting}, nil
}

// SubmitVote casts a ballot in the active meeting's voting phase. The
// voter is the acting player, passed explicitly; each voter gets at
// most one ballot per meeting.
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	meeting := game.Meeting
	if meeting == nil || meeting.ID != input.MeetingID {
		return nil, ErrMeetingNotFound
	}

	if !meeting.Active {
		return nil, ErrMeetingNotActive
	}

	if meeting.Phase != models.MeetingPhaseVoting {
		return nil, ErrMeetingNotInVoting
	}

	voter := game.FindPlayer(input.VoterID)
	if voter == nil {
		return nil, ErrPlayerNotFound
	}

	if !voter.IsAlive {
		return nil, ErrDeadPlayersCannotVote
	}

	if meeting.HasVoted(input.VoterID) {
		return nil, ErrAlreadyVoted
	}

	if input.TargetID != models.VoteTargetSkip {
		target := game.FindPlayer(input.TargetID)
		if target == nil || !target.IsAlive {
			return nil, ErrInvalidVoteTarget
		}
	}

	meeting.Votes = append(meeting.Votes, &models.Vote{
		PlayerID:  input.VoterID,
		TargetID:  input.TargetID,
		Timestamp: s.config.Clock.Now(),
	})
	voter.VotedFor = input.TargetID

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &SubmitVoteOutput{Game: game}, nil
}

// AdvanceMeeting moves the meeting through its timed phases: discussion
// closes into voting at DiscussionEndsAt, and voting resolves at
// VotingEndsAt or as soon as every alive player has voted. Resolution
// eliminates the plurality target unless the vote tied or skip won.
func (s *service) AdvanceMeeting(ctx context.Context, input *AdvanceMeetingInput) (*AdvanceMeetingOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	meeting := game.Meeting
	if game.Status != models.GameStatusMeeting || meeting == nil || !meeting.Active {
		return &AdvanceMeetingOutput{Game: game}, nil
	}

	now := s.config.Clock.Now()

	if meeting.Phase == models.MeetingPhaseDiscussion {
		if now.Before(meeting.DiscussionEndsAt) {
			return &AdvanceMeetingOutput{Game: game}, nil
		}

		meeting.Phase = models.MeetingPhaseVoting
		if err := s.saveGame(ctx, game); err != nil {
			return nil, err
		}
		return &AdvanceMeetingOutput{Game: game}, nil
	}

	if meeting.Phase != models.MeetingPhaseVoting {
		return &AdvanceMeetingOutput{Game: game}, nil
	}

	alive := game.AlivePlayers()
	allVoted := len(meeting.Votes) >= len(alive)
	if now.Before(meeting.VotingEndsAt) && !allVoted {
		return &AdvanceMeetingOutput{Game: game}, nil
	}

	out := &AdvanceMeetingOutput{Game: game, Resolved: true}

	target, tied := tallyVotes(meeting.Votes)
	switch {
	case tied:
		out.Tied = true
	case target == models.VoteTargetSkip || target == "":
		out.Skipped = true
	default:
		if eliminated := game.FindPlayer(target); eliminated != nil {
			eliminated.IsAlive = false
			out.EliminatedPlayerID = eliminated.ID
		}
	}

	meeting.Phase = models.MeetingPhaseResults
	meeting.Active = false
	game.Status = models.GameStatusActive

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return out, nil
}

// tallyVotes returns the plurality target, or tied=true when no single
// target leads. An empty ballot box counts as a skip.
func tallyVotes(votes []*models.Vote) (target string, tied bool) {
	if len(votes) == 0 {
		return models.VoteTargetSkip, false
	}

	counts := make(map[string]int)
	for _, v := range votes {
		counts[v.TargetID]++
	}

	max := 0
	leaders := 0
	for t, n := range counts {
		if n > max {
			max = n
			target = t
			leaders = 1
		} else if n == max {
			leaders++
		}
	}

	if leaders > 1 {
		return "", true
	}
	return target, false
}
