package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/portfolio-resolver/api/models"
	"github.com/moyoez/portfolio-resolver/notify"
	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

const (
	RequestIDKey = "requestId"

	notifyTimeout = 10 * time.Second
)

// Notifier receives failure notifications.
type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, notification *notify.Notification) error
}

type PortfolioController struct {
	resolver types.ResolverInterface
	notifier Notifier
}

func NewPortfolioController(resolver types.ResolverInterface, notifier Notifier) *PortfolioController {
	return &PortfolioController{
		resolver: resolver,
		notifier: notifier,
	}
}

func (ctrl *PortfolioController) HandleResume(c *gin.Context) {
	ctrl.single(c, types.CategoryResume)
}

func (ctrl *PortfolioController) HandleCoverLetter(c *gin.Context) {
	ctrl.single(c, types.CategoryCoverLetter)
}

func (ctrl *PortfolioController) HandleAchievements(c *gin.Context) {
	res := ctrl.resolver.ResolveMany(c.Request.Context(), types.CategoryAchievements)
	ctrl.reportFailure(c, types.CategoryAchievements, res.Status, res.Err)
	c.JSON(models.NewEnvelope(res, models.NewFileViews(res.Value)))
}

func (ctrl *PortfolioController) HandleProfile(c *gin.Context) {
	res := ctrl.resolver.ResolveProfile(c.Request.Context())
	ctrl.reportFailure(c, types.CategoryProfile, res.Status, res.Err)
	c.JSON(models.NewEnvelope(res, res.Value))
}

func (ctrl *PortfolioController) HandleRepository(c *gin.Context) {
	res := ctrl.resolver.RepositoryInfo(c.Request.Context())
	c.JSON(models.NewEnvelope(res, res.Value))
}

func (ctrl *PortfolioController) single(c *gin.Context, category types.Category) {
	res := ctrl.resolver.ResolveSingle(c.Request.Context(), category)
	ctrl.reportFailure(c, category, res.Status, res.Err)
	var data any
	if res.Value != nil {
		data = models.NewFileView(*res.Value)
	}
	c.JSON(models.NewEnvelope(res, data))
}

// reportFailure notifies the webhook in the background so the panel gets its
// answer without waiting on it.
func (ctrl *PortfolioController) reportFailure(c *gin.Context, category types.Category, status types.Status, cause error) {
	if status != types.StatusFailed || ctrl.notifier == nil || !ctrl.notifier.Enabled() {
		return
	}
	n := notify.ResolveFailed(category, c.GetString(RequestIDKey), cause)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := ctrl.notifier.Send(ctx, n); err != nil {
			tool.DefaultLogger.Errorf("[Notify] Failed to send %s notification: %v", notify.EventResolveFailed, err)
		}
	}()
}
