package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"wellness-be/internal/config"
	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/logger"
	"wellness-be/internal/pkg/mailer"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	RequestOtp(ctx context.Context, req *dto.RequestOtpRequest) (*dto.RequestOtpResponse, error)
	VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error)
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	sendLimiter   *serverutils.RateLimiter
	verifyLimiter *serverutils.RateLimiter
	userService   IUserService
	logger        logger.ILogger
	otpCfg        config.OtpConfig
	jwtCfg        config.JWTConfig
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	sendLimiter *serverutils.RateLimiter,
	verifyLimiter *serverutils.RateLimiter,
	userService IUserService,
	log logger.ILogger,
	otpCfg config.OtpConfig,
	jwtCfg config.JWTConfig,
) IAuthService {
	return &authService{
		uowFactory:    uowFactory,
		emailService:  emailService,
		sendLimiter:   sendLimiter,
		verifyLimiter: verifyLimiter,
		userService:   userService,
		logger:        log,
		otpCfg:        otpCfg,
		jwtCfg:        jwtCfg,
	}
}

func (s *authService) RequestOtp(ctx context.Context, req *dto.RequestOtpRequest) (*dto.RequestOtpResponse, error) {
	if s.sendLimiter != nil {
		allowed, err := s.sendLimiter.Allow(ctx, req.Email, s.otpCfg.SendPerHour, time.Hour)
		if err != nil {
			s.logger.Warn("AuthService", "OTP send limiter unavailable", map[string]interface{}{"error": err.Error()})
		} else if !allowed {
			return nil, serverutils.NewAppError(fiber.StatusTooManyRequests, "Too many codes requested, try again later")
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}

	purpose := entity.OtpPurposeSignIn
	if user == nil {
		purpose = entity.OtpPurposeSignUp
		user = &entity.User{
			Id:       uuid.New(),
			Email:    req.Email,
			FullName: req.FullName,
			Gender:   req.Gender,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	code, err := generateOtpCode()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	otp := entity.Otp{
		Id:        uuid.New(),
		Email:     req.Email,
		CodeHash:  string(hash),
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(time.Duration(s.otpCfg.ExpiryMinutes) * time.Minute),
		CreatedAt: time.Now(),
	}
	if err := uow.OtpRepository().Create(ctx, &otp); err != nil {
		return nil, err
	}

	if err := s.emailService.SendOTP(req.Email, code, s.otpCfg.ExpiryMinutes); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusBadGateway, "Failed to send verification email")
	}

	return &dto.RequestOtpResponse{
		Email:         req.Email,
		ExpiryMinutes: s.otpCfg.ExpiryMinutes,
	}, nil
}

func (s *authService) VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error) {
	if s.verifyLimiter != nil {
		allowed, err := s.verifyLimiter.Allow(ctx, req.Email, s.otpCfg.VerifyPerHour, time.Hour)
		if err != nil {
			s.logger.Warn("AuthService", "OTP verify limiter unavailable", map[string]interface{}{"error": err.Error()})
		} else if !allowed {
			return nil, serverutils.NewAppError(fiber.StatusTooManyRequests, "Too many attempts, try again later")
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	otp, err := uow.OtpRepository().FindOne(ctx,
		specification.ByEmail{Email: req.Email},
		specification.UsableOtp{Now: time.Now()},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid or expired code")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(req.Code)); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid or expired code")
	}

	otp.Consumed = true
	if err := uow.OtpRepository().Update(ctx, otp); err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Account not found")
	}
	if user.IsBlocked {
		return nil, serverutils.NewAppError(fiber.StatusForbidden, "Account is blocked")
	}

	if !user.EmailVerified {
		now := time.Now()
		user.EmailVerified = true
		user.EmailVerifiedAt = &now
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if s.verifyLimiter != nil {
		_ = s.verifyLimiter.Reset(ctx, req.Email)
	}

	token, err := serverutils.GenerateToken(user.Id, s.jwtCfg.Secret, time.Duration(s.jwtCfg.ExpiryHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	profile, err := s.userService.GetProfile(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.VerifyOtpResponse{
		Token: token,
		User:  *profile,
	}, nil
}

func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
