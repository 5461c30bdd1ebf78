package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"university_voting_system/configs"
	"university_voting_system/internal"
	"university_voting_system/internal/db/models"
)

// email is the relay's wire format. Template rendering and actual dispatch
// are the relay's job; this client sends plain subject and body.
type email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type mailerService struct {
	client         *http.Client
	baseURL        string
	sender         string
	universityName string
}

// MailerService talks to the outbound email relay. Every send is best
// effort: callers log failures and carry on, a lost email never affects
// stored state.
type MailerService interface {
	SendVoteConfirmation(voter *models.Voter, candidate *models.Candidate, election *models.Election, vote *models.Vote) error
	SendVerificationCode(voter *models.Voter, code string) error
	SendElectionSummary(recipients []string, election *models.Election, stats *models.ElectionStats) error
}

func NewMailerService(config configs.Mailer, appConfig configs.App) MailerService {
	return &mailerService{
		client:         &http.Client{Timeout: config.RequestTimeout},
		baseURL:        config.URL,
		sender:         config.Sender,
		universityName: appConfig.UniversityName,
	}
}

func (s *mailerService) SendVoteConfirmation(voter *models.Voter, candidate *models.Candidate, election *models.Election, vote *models.Vote) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour vote in %q was recorded on %s.\n\nCandidate: %s\nReference: %s\n\nNo further action is needed.",
		voter.FullName,
		election.Title,
		internal.FormatDateTime(vote.CastAt),
		candidate.FullName,
		vote.VoteHash,
	)

	return s.send(email{
		From:    s.sender,
		To:      voter.Email,
		Subject: fmt.Sprintf("Vote confirmation: %s", election.Title),
		Body:    body,
	})
}

func (s *mailerService) SendVerificationCode(voter *models.Voter, code string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour voter verification code for %s is %s.\n\nEnter it to finish your registration. The code expires shortly.",
		voter.FullName,
		s.universityName,
		code,
	)

	return s.send(email{
		From:    s.sender,
		To:      voter.Email,
		Subject: "Your voter verification code",
		Body:    body,
	})
}

func (s *mailerService) SendElectionSummary(recipients []string, election *models.Election, stats *models.ElectionStats) error {
	body := fmt.Sprintf(
		"The election %q closed on %s.\n\nTotal votes: %d\nTurnout: %.2f%%\n%s: %s with %d votes (%.2f%%).",
		election.Title,
		internal.FormatDateTime(election.EndTime),
		stats.TotalVotes,
		stats.TurnoutPercentage,
		stats.Label,
		stats.LeadingCandidate,
		stats.LeadingVotes,
		stats.LeadingPercentage,
	)

	if stats.TotalVotes == 0 {
		body = fmt.Sprintf(
			"The election %q closed on %s with no votes cast.",
			election.Title,
			internal.FormatDateTime(election.EndTime),
		)
	}

	var lastErr error
	for _, recipient := range recipients {
		err := s.send(email{
			From:    s.sender,
			To:      recipient,
			Subject: fmt.Sprintf("Final results: %s", election.Title),
			Body:    body,
		})
		if err != nil {
			lastErr = err
		}
	}

	return lastErr
}

func (s *mailerService) send(message email) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return err
	}

	request, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/%s", s.baseURL, "send"), bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	request.Header.Add("Content-Type", "application/json; charset=utf-8")

	response, err := s.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(response.Body)
		return fmt.Errorf("relay returned %d: %s", response.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	return nil
}
