// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/savings-tracker/backend/internal/application/usecase/profile"
)

// UpsertProfileRequest represents the request body for profile creation or replacement.
type UpsertProfileRequest struct {
	JobTitle           string  `json:"job_title"`
	MonthlySalary      float64 `json:"monthly_salary"`
	SavingsGoalPercent float64 `json:"savings_goal_percent"`
}

// ProfileResponse represents a profile in API responses.
type ProfileResponse struct {
	UserID             string  `json:"user_id"`
	JobTitle           string  `json:"job_title"`
	MonthlySalary      float64 `json:"monthly_salary"`
	SavingsGoalPercent float64 `json:"savings_goal_percent"`
	MonthlySavingsGoal float64 `json:"monthly_savings_goal"`
}

// ToProfileResponse converts a GetProfileOutput to its response DTO.
func ToProfileResponse(output *profile.GetProfileOutput) ProfileResponse {
	monthlySalary, _ := output.MonthlySalary.Float64()
	savingsGoalPercent, _ := output.SavingsGoalPercent.Float64()
	monthlySavingsGoal, _ := output.MonthlySavingsGoal.Float64()

	return ProfileResponse{
		UserID:             output.UserID.String(),
		JobTitle:           output.JobTitle,
		MonthlySalary:      monthlySalary,
		SavingsGoalPercent: savingsGoalPercent,
		MonthlySavingsGoal: monthlySavingsGoal,
	}
}

// ToUpsertProfileResponse converts an UpsertProfileOutput to its response DTO.
func ToUpsertProfileResponse(output *profile.UpsertProfileOutput) ProfileResponse {
	monthlySalary, _ := output.Profile.MonthlySalary.Float64()
	savingsGoalPercent, _ := output.Profile.SavingsGoalPercent.Float64()
	monthlySavingsGoal, _ := output.MonthlySavingsGoal.Float64()

	return ProfileResponse{
		UserID:             output.Profile.UserID.String(),
		JobTitle:           output.Profile.JobTitle,
		MonthlySalary:      monthlySalary,
		SavingsGoalPercent: savingsGoalPercent,
		MonthlySavingsGoal: monthlySavingsGoal,
	}
}
