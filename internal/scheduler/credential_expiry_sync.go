// Package scheduler contém os serviços de agendamento de manutenção de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

type CredentialSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CredentialSyncService varre periodicamente as credenciais ativas e marca
// como expiradas as que passaram do prazo. A resolução em tempo de requisição
// não depende desta varredura; ela existe para manter o estado persistido
// coerente com a realidade.
type CredentialSyncService struct {
	scheduler           *gocron.Scheduler
	credentialRepo      repository.CredentialRepository
	config              CredentialSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCredentialSyncService(
	credentialRepo repository.CredentialRepository,
	cfg *config.Config,
) *CredentialSyncService {
	syncConfig := CredentialSyncConfig{
		CronSchedule: cfg.CredentialSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.CredentialSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de expiração de credenciais carregada")

	return &CredentialSyncService{
		scheduler:      scheduler,
		credentialRepo: credentialRepo,
		config:         syncConfig,
	}
}

func (s *CredentialSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de expiração de credenciais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de expiração de credenciais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncExpiredCredentials(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de credenciais expiradas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de credenciais expiradas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de expiração de credenciais")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncExpiredCredentials lista as credenciais ativas e marca as vencidas.
// Apenas uma varredura roda por vez; chamadas concorrentes retornam sem fazer
// nada.
func (s *CredentialSyncService) SyncExpiredCredentials() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Varredura de credenciais expiradas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logrus.WithField("run_id", runID).Info("Iniciando varredura de credenciais expiradas")

	credentials, err := s.credentialRepo.ListByStatus(domain.CredentialStatusActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar credenciais ativas")
		return err
	}

	expiredCount := 0
	for _, credential := range credentials {
		if !credential.Expired() {
			continue
		}

		if err := s.credentialRepo.UpdateStatus(credential.ID, domain.CredentialStatusExpired); err != nil {
			// Uma falha não interrompe a varredura: a credencial será
			// reavaliada na próxima execução
			logrus.WithFields(logrus.Fields{
				"run_id":        runID,
				"credential_id": credential.ID,
				"error":         err.Error(),
			}).Error("Erro ao marcar credencial como expirada")
			continue
		}

		expiredCount++
	}

	logrus.WithFields(logrus.Fields{
		"run_id":        runID,
		"total_active":  len(credentials),
		"total_expired": expiredCount,
	}).Info("Varredura de credenciais expiradas concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma varredura de credenciais expiradas
func (s *CredentialSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de credenciais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de credenciais expiradas")
	go func() {
		if err := s.SyncExpiredCredentials(); err != nil {
			logrus.WithError(err).Error("Erro na varredura manual de credenciais expiradas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CredentialSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
