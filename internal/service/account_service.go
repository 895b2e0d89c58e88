package service

import (
    "context"
    "errors"
    "strings"

    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/config"
    "github.com/d60-Lab/mini-mall/internal/auth"
    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
)

var (
    ErrMissingCredentials = errors.New("username and password are required")
    ErrUsernameTaken      = errors.New("username already taken")
    ErrInvalidCredentials = errors.New("invalid credentials")
    ErrUserNotFound       = errors.New("user not found")
)

// AccountService 账号注册、登录与资料维护
type AccountService interface {
    Signup(ctx context.Context, username, password, name, email, address string) (*model.User, error)
    // Login 校验凭据并签发访问令牌
    Login(ctx context.Context, username, password string) (*model.User, string, error)
    Get(ctx context.Context, userID int64) (*model.User, error)
    UpdateProfile(ctx context.Context, userID int64, name, email, address string) (*model.User, error)
}

type accountService struct {
    userRepo repository.UserRepository
    jwtCfg   config.JWTConfig
}

func NewAccountService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) AccountService {
    return &accountService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *accountService) Signup(ctx context.Context, username, password, name, email, address string) (*model.User, error) {
    username = strings.TrimSpace(username)
    if username == "" || password == "" {
        return nil, ErrMissingCredentials
    }
    taken, err := s.userRepo.ExistsByUsername(ctx, username)
    if err != nil {
        return nil, err
    }
    if taken {
        return nil, ErrUsernameTaken
    }
    // 密码只落 bcrypt 哈希，明文不出本函数
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    user := &model.User{
        Username:     username,
        PasswordHash: string(hash),
        Name:         strings.TrimSpace(name),
        Email:        strings.TrimSpace(email),
        Address:      strings.TrimSpace(address),
        Role:         model.RoleCustomer,
    }
    if err := s.userRepo.Create(ctx, user); err != nil {
        return nil, err
    }
    return user, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
    user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, "", ErrInvalidCredentials
        }
        return nil, "", err
    }
    if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
        return nil, "", ErrInvalidCredentials
    }
    token, err := auth.Issue(s.jwtCfg, user)
    if err != nil {
        return nil, "", err
    }
    return user, token, nil
}

func (s *accountService) Get(ctx context.Context, userID int64) (*model.User, error) {
    user, err := s.userRepo.GetByID(ctx, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    return user, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID int64, name, email, address string) (*model.User, error) {
    if _, err := s.Get(ctx, userID); err != nil {
        return nil, err
    }
    err := s.userRepo.UpdateProfile(ctx, userID,
        strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(address))
    if err != nil {
        return nil, err
    }
    return s.Get(ctx, userID)
}
