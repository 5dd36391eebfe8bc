package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var quizQuestions = []gin.H{
	{
		"id":       1,
		"question": "Which of these is NOT biodegradable?",
		"options":  []string{"Banana peel", "Paper bag", "Plastic bottle", "Cotton cloth"},
		"answer":   "Plastic bottle",
	},
	{
		"id":       2,
		"question": "What is the primary goal of source segregation?",
		"options": []string{
			"To make waste look better",
			"To facilitate recycling and composting",
			"To increase landfill size",
			"To reduce collection frequency",
		},
		"answer": "To facilitate recycling and composting",
	},
	{
		"id":       3,
		"question": "Which color bin is used for dry waste in Madurai?",
		"options":  []string{"Green", "Blue", "Red", "Yellow"},
		"answer":   "Blue",
	},
}

var wasteTips = []gin.H{
	{"title": "Home Composting", "content": "Use a small bin for kitchen waste. Layer with dry leaves or coco peat."},
	{"title": "Reduce Plastic", "content": "Carry your own cloth bag when visiting markets like Simmakkal."},
	{"title": "E-Waste Disposal", "content": "Don't throw batteries in regular trash. Use designated collection points."},
}

// GetQuiz returns the waste-segregation quiz questions.
func GetQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, quizQuestions)
}

// GetTips returns waste-handling tips.
func GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, wasteTips)
}
