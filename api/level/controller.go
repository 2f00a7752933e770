package levelapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-level/api/identity"
	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/beka-birhanu/vinom-level/service"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LevelController serves player levels.
type LevelController struct {
	levels i.LevelManager
}

// NewLevelController creates a LevelController.
func NewLevelController(lm i.LevelManager) (*LevelController, error) {
	if lm == nil {
		return nil, errors.New("level controller requires a level manager")
	}
	return &LevelController{levels: lm}, nil
}

// RegisterPublic registers public routes.
func (lc *LevelController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard/:kind", lc.leaderboard)
}

// RegisterProtected registers protected routes.
func (lc *LevelController) RegisterProtected(route *gin.RouterGroup) {
	levels := route.Group("/levels")
	{
		levels.POST("", lc.generate)
		levels.GET("/:ID", lc.level)
		levels.GET("/:ID/segments", lc.segments)
		levels.GET("/:ID/ascii", lc.ascii)
		levels.POST("/:ID/collectibles/:CID", lc.collect)
	}
}

// generate builds a level for the caller.
func (lc *LevelController) generate(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := lc.levels.Config(request.Preset)
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	lvl, err := lc.levels.Generate(ctx.Request.Context(), playerID, request.apply(cfg))
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, newLevelResponse(lvl))
}

// level returns the caller's level.
func (lc *LevelController) level(ctx *gin.Context) {
	lvl, ok := lc.ownedLevel(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newLevelResponse(lvl))
}

// segments returns the wall boxes of the caller's level.
func (lc *LevelController) segments(ctx *gin.Context) {
	lvl, ok := lc.ownedLevel(ctx)
	if !ok {
		return
	}
	width, depth, center := lvl.Config.Layout().Bounds(lvl.Maze)
	ctx.JSON(http.StatusOK, SegmentsResponse{
		ID:       lvl.ID,
		Width:    width,
		Depth:    depth,
		Center:   center,
		Segments: lvl.Segments,
	})
}

// ascii renders the caller's level as text.
func (lc *LevelController) ascii(ctx *gin.Context) {
	lvl, ok := lc.ownedLevel(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, lvl.Maze.String())
}

// collect picks up one collectible in the caller's level.
func (lc *LevelController) collect(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	levelID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level id"})
		return
	}
	collectibleID, err := uuid.Parse(ctx.Param("CID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid collectible id"})
		return
	}

	item, err := lc.levels.Collect(ctx.Request.Context(), playerID, levelID, collectibleID)
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, CollectResponse{Collectible: item})
}

// leaderboard lists the best players for a collectible kind.
func (lc *LevelController) leaderboard(ctx *gin.Context) {
	var n int64
	if raw := ctx.Query("n"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be an integer"})
			return
		}
		n = parsed
	}

	standings, err := lc.levels.Leaderboard(ctx.Request.Context(), level.Kind(ctx.Param("kind")), n)
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"standings": standings})
}

// ownedLevel loads the level named in the path and checks the caller owns it.
// It writes the error response itself and reports whether the handler should continue.
func (lc *LevelController) ownedLevel(ctx *gin.Context) (*level.Level, bool) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return nil, false
	}
	levelID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level id"})
		return nil, false
	}

	lvl, err := lc.levels.Level(ctx.Request.Context(), levelID)
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return nil, false
	}
	if lvl.OwnerID != playerID {
		ctx.JSON(errorStatus(service.ErrNotLevelOwner), gin.H{"error": service.ErrNotLevelOwner.Error()})
		return nil, false
	}
	return lvl, true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, level.ErrInvalidBatch),
		errors.Is(err, service.ErrUnknownPreset),
		errors.Is(err, service.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, i.ErrLevelNotFound),
		errors.Is(err, level.ErrCollectibleNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotLevelOwner):
		return http.StatusForbidden
	case errors.Is(err, level.ErrAlreadyCollected):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
