package connecting

import (
	"time"

	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/domain"
)

// Connector expõe o estado das conexões do usuário com os provedores de anúncio
type Connector interface {
	GetStatus(userID string) (*StatusResponse, error)
}

// StatusResponse acrescenta a validade do token a cada conexão, para o
// frontend decidir quando exibir o fluxo de reconexão
type StatusResponse struct {
	Meta   *ConnectionStatus `json:"meta"`
	Google *ConnectionStatus `json:"google"`
}

type ConnectionStatus struct {
	Connection   *domain.Connection `json:"connection"`
	TokenExpired bool               `json:"token_expired"`
}

type Service struct {
	connectionRepository repository.ConnectionRepository

	nowFunc func() time.Time
}

func NewService(connectionRepo repository.ConnectionRepository) Connector {
	return &Service{
		connectionRepository: connectionRepo,
		nowFunc:              time.Now,
	}
}

func (s *Service) GetStatus(userID string) (*StatusResponse, error) {
	connections, err := s.connectionRepository.GetConnectionsByUser(userID)
	if err != nil {
		return nil, err
	}

	response := &StatusResponse{}
	now := s.nowFunc()

	if connections.Meta != nil {
		response.Meta = &ConnectionStatus{
			Connection:   connections.Meta,
			TokenExpired: connections.Meta.TokenExpired(now),
		}
	}

	if connections.Google != nil {
		response.Google = &ConnectionStatus{
			Connection:   connections.Google,
			TokenExpired: connections.Google.TokenExpired(now),
		}
	}

	return response, nil
}
