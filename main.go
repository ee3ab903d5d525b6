// File: shiftmanager/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"shiftmanager/backend"
	employeeRepo "shiftmanager/backend/repository/employee"
	roleRepo "shiftmanager/backend/repository/role"
	shiftRepo "shiftmanager/backend/repository/shift"
	"shiftmanager/config"
	"shiftmanager/models"
	"shiftmanager/services/schedule"
	"shiftmanager/services/session"
	"shiftmanager/utils"

	"go.uber.org/zap"
)

// consoleNotifier prints transient notifications to the operator and mirrors
// them into the log.
type consoleNotifier struct {
	logger *zap.Logger
}

func (n *consoleNotifier) Notify(severity session.Severity, message string) {
	fmt.Printf("[%s] %s\n", severity, message)
	n.logger.Info("notification", zap.String("severity", string(severity)), zap.String("message", message))
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client := backend.NewClient()

	// repositories.
	shifts := shiftRepo.NewRESTShiftRepo(client)
	roles := roleRepo.NewRESTRoleRepo(client)
	employees := employeeRepo.NewRESTEmployeeRepo(client)

	// services.
	grid := schedule.NewDefaultWeekGridService(shifts, logger, time.Now())
	editSession := &session.DefaultEditSessionService{
		Shifts:   shifts,
		RoleRepo: roles,
		Grid:     grid,
		Notify:   &consoleNotifier{logger: logger},
		Logger:   logger,
	}

	ctx := context.Background()
	if err := grid.Refresh(ctx); err != nil {
		logger.Sugar().Warnf("initial board fetch failed: %v", err)
	}
	printWeek(grid)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("commands: next | prev | refresh | week | employees | add <employeeId> <name> <day> <roleId> <start> <end> | quit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "next":
			if err := grid.GoToAdjacentWeek(ctx, schedule.DirectionNext); err == nil {
				printWeek(grid)
			}
		case "prev":
			if err := grid.GoToAdjacentWeek(ctx, schedule.DirectionPrevious); err == nil {
				printWeek(grid)
			}
		case "refresh":
			if err := grid.Refresh(ctx); err == nil {
				printWeek(grid)
			}
		case "week":
			printWeek(grid)
		case "employees":
			listEmployees(ctx, employees)
		case "add":
			addShift(ctx, editSession, fields[1:])
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func printWeek(grid schedule.WeekGridService) {
	fmt.Println(grid.HeaderRange())
	board := grid.Board()
	if len(board) == 0 {
		fmt.Println("  (no shifts this week)")
		return
	}
	for name := range board {
		for _, day := range grid.Days() {
			for _, shift := range grid.ShiftsFor(name, schedule.DayKey(day)) {
				fmt.Printf("  %s  %s  %s %s-%s\n", name, shift.StartDate, shift.Role, shift.StartTime, shift.EndTime)
			}
		}
	}
}

func listEmployees(ctx context.Context, repo employeeRepo.EmployeeRepository) {
	page, err := repo.List(ctx, models.ListQuery{Start: 0, Size: config.AppConfig.DefaultPageSize})
	if err != nil {
		fmt.Printf("failed to list employees: %v\n", err)
		return
	}
	for _, e := range page.Data {
		fmt.Printf("  %d  %s %s\n", e.ID, e.FirstName, e.LastName)
	}
	fmt.Printf("  total: %d\n", page.Meta.TotalRowCount)
}

func addShift(ctx context.Context, editSession session.EditSessionService, args []string) {
	if len(args) != 6 {
		fmt.Println("usage: add <employeeId> <name> <day> <roleId> <start> <end>")
		return
	}
	employeeID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("invalid employee id %q\n", args[0])
		return
	}
	roleID, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Printf("invalid role id %q\n", args[3])
		return
	}

	event := session.CellEvent{
		Kind:         session.EventAddShift,
		EmployeeID:   employeeID,
		EmployeeName: args[1],
		Day:          args[2],
	}
	if err := editSession.HandleCellEvent(ctx, event); err != nil {
		fmt.Printf("could not open shift dialog: %v\n", err)
		return
	}
	editSession.SetRole(roleID)
	if err := editSession.SetStartTime(args[4]); err != nil {
		fmt.Println(err)
		editSession.Close()
		return
	}
	if err := editSession.SetEndTime(args[5]); err != nil {
		fmt.Println(err)
		editSession.Close()
		return
	}
	if !editSession.IsSaveEnabled() {
		fmt.Println("shift is incomplete: pick a role and an ordered time range")
		editSession.Close()
		return
	}
	if err := editSession.Save(ctx); err != nil {
		fmt.Printf("save failed: %v\n", err)
	}
	if msg := editSession.ErrorMessage(); msg != "" {
		fmt.Printf("rejected: %s\n", msg)
		editSession.Close()
	}
}
