package controller

import (
	"errors"
	"strconv"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CourseController 课程目录的只读查询入口；完整的课程管理在别的系统，
// 这里只维持测验合成器需要的最小面
type CourseController struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseController(courseRepo *repository.CourseRepository) *CourseController {
	return &CourseController{CourseRepo: courseRepo}
}

// @Summary 课程列表
// @Description 分页获取课程目录
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	courses, total, err := c.CourseRepo.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"list": courses, "total": total, "page": page, "limit": limit})
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "invalid courseId")
		return
	}

	course, err := c.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

type CreateCourseRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Level         string `json:"level"`
	DurationHours int    `json:"durationHours"`
}

// @Summary 创建课程
// @Description 教师创建课程（开发用最小接口）
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response
// @Router /teacher/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level := req.Level
	if level == "" {
		level = "Beginner"
	}

	course := &model.Course{
		Title:         req.Title,
		Description:   req.Description,
		Level:         level,
		DurationHours: req.DurationHours,
		InstructorID:  user.UserID,
	}
	if err := c.CourseRepo.Create(course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, course)
}
