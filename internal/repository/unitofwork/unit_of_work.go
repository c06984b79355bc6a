package unitofwork

import (
	"context"

	"wellness-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	OtpRepository() contract.OtpRepository
	AssessmentRepository() contract.AssessmentRepository

	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository

	ExerciseRepository() contract.ExerciseRepository
	VideoRepository() contract.VideoRepository

	CommunityRepository() contract.CommunityRepository
	PostRepository() contract.PostRepository
	CommentRepository() contract.CommentRepository
	PostLikeRepository() contract.PostLikeRepository

	ProgressRepository() contract.ProgressRepository
	CheckInRepository() contract.CheckInRepository
	NotificationRepository() contract.NotificationRepository
}
