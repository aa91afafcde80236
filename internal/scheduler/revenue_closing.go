package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/franbz1/hotel-san-miguel/internal/config"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// RevenueClosingConfig representa a configuração do agendador de fechamento diário
type RevenueClosingConfig struct {
	CronSchedule string
	Enabled      bool
	LookbackDays int
}

// RevenueClosingService grava periodicamente o fechamento de receita dos últimos dias
type RevenueClosingService struct {
	scheduler          *gocron.Scheduler
	config             RevenueClosingConfig
	closingService     reporting.ClosingManager
	now                func() time.Time
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunFailures    int
}

func NewRevenueClosingService(closingService reporting.ClosingManager, appConfig *config.Config) *RevenueClosingService {
	closingConfig := RevenueClosingConfig{
		CronSchedule: appConfig.RevenueClosing.CronSchedule,
		Enabled:      appConfig.RevenueClosing.Enabled,
		LookbackDays: appConfig.RevenueClosing.LookbackDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closingConfig.CronSchedule,
		"enabled":       closingConfig.Enabled,
		"lookback_days": closingConfig.LookbackDays,
	}).Info("Configuração do fechamento diário de receita carregada")

	return &RevenueClosingService{
		scheduler:      gocron.NewScheduler(time.UTC),
		config:         closingConfig,
		closingService: closingService,
		now:            time.Now,
	}
}

// Start agenda o fechamento e para o agendador quando o contexto é cancelado
func (s *RevenueClosingService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Fechamento diário de receita desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento diário de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.closeRecentDays(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento diário de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento diário de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// closeRecentDays recalcula os fechamentos de ontem até LookbackDays dias atrás
func (s *RevenueClosingService) closeRecentDays(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário de receita já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.now()
	s.syncMutex.Unlock()

	failures := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunCompletedAt = s.now()
		s.lastRunFailures = failures
		s.syncMutex.Unlock()
	}()

	today := s.now().UTC()
	for i := 1; i <= s.config.LookbackDays; i++ {
		date := today.AddDate(0, 0, -i).Format(time.DateOnly)

		closing, err := s.closingService.CloseDay(ctx, date)
		if err != nil {
			failures++
			logrus.WithError(err).WithField("fecha", date).Error("Erro ao gravar fechamento diário de receita")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"fecha":             date,
			"total_ingresos":    closing.TotalIngresos.StringFixed(2),
			"cantidad_facturas": closing.CantidadFacturas,
		}).Info("Fechamento diário de receita gravado")
	}
}

// TriggerManualSync dispara o fechamento fora do horário agendado
func (s *RevenueClosingService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Fechamento diário de receita já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando fechamento manual de receita")
	go s.closeRecentDays(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *RevenueClosingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":          s.syncRunning,
		"sync_cron":             s.config.CronSchedule,
		"sync_enabled":          s.config.Enabled,
		"lookback_days":         s.config.LookbackDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_failures":     s.lastRunFailures,
	}
}
