package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/akinwale/sms-blast/dao"
	"github.com/akinwale/sms-blast/gateway"
	"github.com/akinwale/sms-blast/ingest"
	"github.com/akinwale/sms-blast/model"
	"github.com/akinwale/sms-blast/render"
	"github.com/akinwale/sms-blast/service/dto"
	"github.com/akinwale/sms-blast/util"
	"github.com/cskr/pubsub"
	"github.com/dchest/uniuri"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	eventsTopic    = "send-events"
	tokenLength    = 40
	minPasswordLen = 6
	dateOnly       = "2006-01-02"
)

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

type UnauthorizedErr struct {
	message string
}

func (e *UnauthorizedErr) Error() string {
	return e.message
}

func NewUnauthorizedError(msg string) *UnauthorizedErr {
	return &UnauthorizedErr{message: msg}
}

type Service interface {
	//SignUp registers a user and signs them in
	SignUp(creds dto.Credentials) (dto.Token, error)
	//SignIn verifies credentials and issues a session token
	SignIn(creds dto.Credentials) (dto.Token, error)
	//SignOut invalidates the session token
	SignOut(token string) error
	//Authenticate resolves a session token to the owner id
	Authenticate(token string) (uint32, error)
	//UploadContacts ingests a CSV batch for the owner
	UploadContacts(ownerId uint32, csvText string) (dto.UploadResult, error)
	//GetPendingContacts lists the owner's unsent contacts, most recent first
	GetPendingContacts(ownerId uint32) ([]dto.Contact, error)
	//SaveTemplate stores a message template and returns its id
	SaveTemplate(ownerId uint32, tmpl dto.NewTemplate) (dto.Id, error)
	//GetTemplates lists the owner's templates, most recent first
	GetTemplates(ownerId uint32) ([]dto.Template, error)
	//Broadcast sends the chosen template to every pending contact of the owner
	Broadcast(ownerId, templateId uint32) (dto.BroadcastResult, error)
	//GetProgress reports the state of the owner's latest broadcast
	GetProgress(ownerId uint32) dto.BroadcastProgress
	//SendOne delivers a single ad-hoc message
	SendOne(msg dto.SingleSend) (dto.SendResponse, error)
}

type service struct {
	gatewayClient   gateway.Client
	limiter         gateway.RateLimiter
	contactDao      dao.ContactDao
	templateDao     dao.TemplateDao
	userDao         dao.UserDao
	sessionDao      dao.SessionDao
	ps              *pubsub.PubSub
	sessionTtlHours int

	progressMu sync.Mutex
	progress   map[uint32]*dto.BroadcastProgress
}

func NewService(gatewayClient gateway.Client, limiter gateway.RateLimiter,
	contactDao dao.ContactDao, templateDao dao.TemplateDao,
	userDao dao.UserDao, sessionDao dao.SessionDao, sessionTtlHours int) Service {

	service := &service{
		gatewayClient:   gatewayClient,
		limiter:         limiter,
		contactDao:      contactDao,
		templateDao:     templateDao,
		userDao:         userDao,
		sessionDao:      sessionDao,
		ps:              pubsub.New(100),
		sessionTtlHours: sessionTtlHours,
		progress:        make(map[uint32]*dto.BroadcastProgress),
	}

	go service.logSendEvents(service.ps.Sub(eventsTopic))
	go service.CleanupSessions()

	return service
}

func (s *service) CleanupSessions() {
	for {
		err := s.sessionDao.RemoveOlderThanHours(s.sessionTtlHours)
		if err != nil {
			zap.L().Warn("Error cleaning up stale sessions", zap.Error(err))
		}
		time.Sleep(time.Hour)
	}
}

//logSendEvents drains per-recipient send events published by the dispatch loop
func (s *service) logSendEvents(events chan interface{}) {
	for val := range events {
		event := val.(dto.SendEvent)

		if event.Ok {
			zap.L().Info("Message sent", zap.String("phone", event.Phone))
		} else {
			zap.L().Warn("Message failed", zap.String("phone", event.Phone), zap.String("error", event.Error))
		}
	}
}

func (s *service) SignUp(creds dto.Credentials) (dto.Token, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if util.IsBlank(email) || !strings.Contains(email, "@") {
		return dto.Token{}, NewInvalidPayloadError("Invalid email")
	}
	if len(creds.Password) < minPasswordLen {
		return dto.Token{}, NewInvalidPayloadError("Password must be at least 6 characters long")
	}

	if _, err := s.userDao.GetOneByEmail(email); err == nil {
		return dto.Token{}, NewInvalidPayloadError("User already exists " + email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.Token{}, err
	}

	userId, err := s.userDao.Create(email, hash)
	if err != nil {
		return dto.Token{}, err
	}

	return s.newSession(userId)
}

func (s *service) SignIn(creds dto.Credentials) (dto.Token, error) {
	user, err := s.userDao.GetOneByEmail(strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		return dto.Token{}, NewUnauthorizedError("Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)) != nil {
		return dto.Token{}, NewUnauthorizedError("Invalid email or password")
	}

	return s.newSession(user.Id)
}

func (s *service) newSession(ownerId uint32) (dto.Token, error) {
	token := uniuri.NewLen(tokenLength)
	if err := s.sessionDao.Create(ownerId, token); err != nil {
		return dto.Token{}, err
	}
	return dto.Token{Token: token}, nil
}

func (s *service) SignOut(token string) error {
	err := s.sessionDao.DeleteByToken(token)
	if err != nil && err.Error() == "not found" {
		return nil
	}
	return err
}

func (s *service) Authenticate(token string) (uint32, error) {
	if util.IsBlank(token) {
		return 0, NewUnauthorizedError("Missing session token")
	}

	session, err := s.sessionDao.GetOneByToken(token)
	if err != nil {
		return 0, NewUnauthorizedError("Invalid session token")
	}

	//expired sessions are swept hourly, reject them in the meantime
	if time.Since(session.CreatedAt) > time.Duration(s.sessionTtlHours)*time.Hour {
		return 0, NewUnauthorizedError("Session expired")
	}

	return session.OwnerId, nil
}

func (s *service) UploadContacts(ownerId uint32, csvText string) (dto.UploadResult, error) {
	candidates, err := ingest.Parse(csvText)
	if err != nil {
		return dto.UploadResult{}, err
	}

	if len(candidates) == 0 {
		return dto.UploadResult{}, NewInvalidPayloadError("No contacts found in file")
	}

	if err := ingest.ValidatePhones(candidates); err != nil {
		return dto.UploadResult{}, err
	}

	batchDate := time.Now().Format(dateOnly)
	contacts := make([]model.Contact, 0, len(candidates))
	for _, candidate := range candidates {
		contacts = append(contacts, model.Contact{
			OwnerId:   ownerId,
			Phone:     candidate.Phone,
			Name:      candidate.Name,
			Amount:    candidate.Amount,
			Sent:      false,
			BatchDate: batchDate,
		})
	}

	if err := s.contactDao.CreateAll(contacts); err != nil {
		return dto.UploadResult{}, err
	}

	zap.L().Info("Contacts uploaded", zap.Uint32("owner", ownerId), zap.Int("count", len(contacts)))

	return dto.UploadResult{Count: len(contacts)}, nil
}

func (s *service) GetPendingContacts(ownerId uint32) ([]dto.Contact, error) {
	pending, err := s.contactDao.GetPendingByOwner(ownerId)
	if err != nil {
		return nil, err
	}

	contacts := []dto.Contact{}
	for _, contact := range pending {
		contacts = append(contacts, toContactDto(contact))
	}
	return contacts, nil
}

func toContactDto(contact model.Contact) dto.Contact {
	out := dto.Contact{
		Id:        contact.Id,
		Phone:     contact.Phone,
		Amount:    contact.Amount,
		Sent:      contact.Sent,
		BatchDate: contact.BatchDate,
	}
	if contact.Name != "" {
		name := contact.Name
		out.Name = &name
	}
	return out
}

func (s *service) SaveTemplate(ownerId uint32, tmpl dto.NewTemplate) (dto.Id, error) {
	if util.IsBlank(tmpl.Title) || util.IsBlank(tmpl.Body) {
		return dto.Id{}, NewInvalidPayloadError("Template title and body are required")
	}

	id, err := s.templateDao.Create(ownerId, tmpl.Title, tmpl.Body)
	if err != nil {
		return dto.Id{}, err
	}
	return dto.Id{Id: id}, nil
}

func (s *service) GetTemplates(ownerId uint32) ([]dto.Template, error) {
	all, err := s.templateDao.GetAllByOwner(ownerId)
	if err != nil {
		return nil, err
	}

	templates := []dto.Template{}
	for _, tmpl := range all {
		templates = append(templates, dto.Template{Id: tmpl.Id, Title: tmpl.Title, Body: tmpl.Body})
	}
	return templates, nil
}

//Broadcast is the dispatch loop: strictly sequential, paced by the rate
//limiter, one gateway call per pending recipient per run. Failed recipients
//stay pending and will be re-attempted on the next run.
func (s *service) Broadcast(ownerId, templateId uint32) (dto.BroadcastResult, error) {
	tmpl, err := s.templateDao.GetOneByIdAndOwner(templateId, ownerId)
	if err != nil {
		return dto.BroadcastResult{}, err
	}

	pending, err := s.contactDao.GetPendingByOwner(ownerId)
	if err != nil {
		return dto.BroadcastResult{}, err
	}
	if len(pending) == 0 {
		return dto.BroadcastResult{}, NewInvalidPayloadError("No pending recipients")
	}

	s.startProgress(ownerId, len(pending))
	defer s.finishProgress(ownerId)

	result := dto.BroadcastResult{Failures: []dto.SendFailure{}}
	for _, contact := range pending {
		//pace requests to respect the gateway rate limit
		if err := s.limiter.Wait(context.Background()); err != nil {
			zap.L().Warn("Rate limiter interrupted", zap.Error(err))
		}

		message := render.Message(tmpl.Body, contact.Name, contact.Amount, contact.Phone)

		_, err := s.gatewayClient.Send(contact.Phone, message)
		if err != nil {
			result.FailureCount++
			result.Failures = append(result.Failures, dto.SendFailure{Phone: contact.Phone, Error: err.Error()})
			s.recordSend(ownerId, false)
			s.ps.Pub(dto.SendEvent{OwnerId: ownerId, Phone: contact.Phone, Error: err.Error()}, eventsTopic)
			continue
		}

		if err := s.contactDao.MarkSent(contact.Id); err != nil {
			//the message did go out, keep counting it as a success
			zap.L().Warn("Error marking contact as sent", zap.Uint32("id", contact.Id), zap.Error(err))
		}
		result.SuccessCount++
		s.recordSend(ownerId, true)
		s.ps.Pub(dto.SendEvent{OwnerId: ownerId, Phone: contact.Phone, Ok: true}, eventsTopic)
	}

	return result, nil
}

func (s *service) startProgress(ownerId uint32, total int) {
	s.progressMu.Lock()
	s.progress[ownerId] = &dto.BroadcastProgress{Running: true, Total: total}
	s.progressMu.Unlock()
}

//recordSend folds one send outcome into the owner's progress snapshot. Counts
//are updated in the dispatch loop itself so GetProgress never lags behind a
//finished broadcast.
func (s *service) recordSend(ownerId uint32, ok bool) {
	s.progressMu.Lock()
	if progress, exists := s.progress[ownerId]; exists {
		progress.Done++
		if ok {
			progress.SuccessCount++
		} else {
			progress.FailureCount++
		}
	}
	s.progressMu.Unlock()
}

func (s *service) finishProgress(ownerId uint32) {
	s.progressMu.Lock()
	if progress, ok := s.progress[ownerId]; ok {
		progress.Running = false
	}
	s.progressMu.Unlock()
}

func (s *service) GetProgress(ownerId uint32) dto.BroadcastProgress {
	s.progressMu.Lock()
	defer s.progressMu.Unlock()

	if progress, ok := s.progress[ownerId]; ok {
		return *progress
	}
	return dto.BroadcastProgress{}
}

func (s *service) SendOne(msg dto.SingleSend) (dto.SendResponse, error) {
	data, err := s.gatewayClient.Send(msg.Phone, msg.Message)
	if err != nil {
		return dto.SendResponse{}, err
	}
	return dto.SendResponse{Success: true, Data: data}, nil
}
