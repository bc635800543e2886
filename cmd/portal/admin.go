package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courierPortal/models"
)

// requireAdmin restores the session and rejects non-admin roles.
func requireAdmin() error {
	u, err := currentUser()
	if err != nil {
		return err
	}
	if u.Role != models.RoleAdmin {
		return errors.New("administrator role required")
	}
	return nil
}

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Manage network branches",
}

var branchOpts struct {
	name     string
	typ      string
	location string
	manager  string
}

var branchAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		b, err := app.admin.SaveBranch(cmd.Context(), models.Branch{
			Name:     branchOpts.name,
			Type:     models.BranchType(branchOpts.typ),
			Location: branchOpts.location,
			Manager:  branchOpts.manager,
		})
		if err != nil {
			return fail(err)
		}
		color.Green("Created branch %s (%s)", b.Name, b.ID)
		return nil
	},
}

var branchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		list, err := app.admin.Branches(cmd.Context())
		if err != nil {
			return fail(err)
		}
		for _, b := range list {
			fmt.Printf("%-36s %-20s %-6s %-10s staff=%d %s\n",
				b.ID, b.Name, b.Type, b.Location, b.StaffCount, b.Status)
		}
		return nil
	},
}

var branchStatusCmd = &cobra.Command{
	Use:   "set-status <branch-id> <Active|Inactive>",
	Short: "Toggle a branch's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		if err := app.admin.SetBranchStatus(cmd.Context(), args[0], models.BranchStatus(args[1])); err != nil {
			return fail(err)
		}
		color.Green("Branch %s is now %s", args[0], args[1])
		return nil
	},
}

var branchDeleteCmd = &cobra.Command{
	Use:   "delete <branch-id>",
	Short: "Remove a branch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		if err := app.admin.DeleteBranch(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		color.Green("Branch %s removed", args[0])
		return nil
	},
}

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Manage fleet vehicles",
}

var fleetOpts struct {
	number string
	typ    string
}

var fleetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a vehicle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		v, err := app.admin.SaveVehicle(cmd.Context(), models.Vehicle{
			Number: fleetOpts.number,
			Type:   fleetOpts.typ,
		})
		if err != nil {
			return fail(err)
		}
		color.Green("Registered vehicle %s", v.Number)
		return nil
	},
}

var fleetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fleet vehicles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		list, err := app.admin.Vehicles(cmd.Context())
		if err != nil {
			return fail(err)
		}
		for _, v := range list {
			driver := "-"
			if v.Driver != nil {
				driver = *v.Driver
			}
			fmt.Printf("%-12s %-10s driver=%-36s %s\n", v.Number, v.Type, driver, v.Status)
		}
		return nil
	},
}

var fleetAssignCmd = &cobra.Command{
	Use:   "assign <vehicle-number> <staff-id>",
	Short: "Assign a driver to a vehicle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		if err := app.admin.AssignDriver(cmd.Context(), args[0], args[1]); err != nil {
			return fail(err)
		}
		color.Green("Assigned %s to %s", args[1], args[0])
		return nil
	},
}

var fleetDeleteCmd = &cobra.Command{
	Use:   "delete <vehicle-number>",
	Short: "Remove a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		if err := app.admin.DeleteVehicle(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		color.Green("Vehicle %s removed", args[0])
		return nil
	},
}

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage branch staff",
}

var staffOpts struct {
	name   string
	role   string
	branch string
	phone  string
}

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a staff member",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		m, err := app.admin.SaveStaff(cmd.Context(), models.StaffMember{
			Name:     staffOpts.name,
			Role:     models.StaffRole(staffOpts.role),
			BranchID: staffOpts.branch,
			Phone:    staffOpts.phone,
		})
		if err != nil {
			return fail(err)
		}
		color.Green("Added %s (%s)", m.Name, m.ID)
		return nil
	},
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff members",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		list, err := app.admin.Staff(cmd.Context())
		if err != nil {
			return fail(err)
		}
		for _, m := range list {
			docs := "docs pending"
			if m.DocsComplete {
				docs = "docs complete"
			}
			fmt.Printf("%-36s %-20s %-8s branch=%-36s %s, %s\n",
				m.ID, m.Name, m.Role, m.BranchID, m.Status, docs)
		}
		return nil
	},
}

var staffDeleteCmd = &cobra.Command{
	Use:   "delete <staff-id>",
	Short: "Remove a staff member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return fail(err)
		}
		if err := app.admin.DeleteStaff(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		color.Green("Staff %s removed", args[0])
		return nil
	},
}

func init() {
	branchAddCmd.Flags().StringVar(&branchOpts.name, "name", "", "branch name")
	branchAddCmd.Flags().StringVar(&branchOpts.typ, "type", "Branch", "Branch or Hub")
	branchAddCmd.Flags().StringVar(&branchOpts.location, "location", "", "location")
	branchAddCmd.Flags().StringVar(&branchOpts.manager, "manager", "", "manager name")
	_ = branchAddCmd.MarkFlagRequired("name")
	branchCmd.AddCommand(branchAddCmd, branchListCmd, branchStatusCmd, branchDeleteCmd)

	fleetAddCmd.Flags().StringVar(&fleetOpts.number, "number", "", "vehicle number")
	fleetAddCmd.Flags().StringVar(&fleetOpts.typ, "type", "", "vehicle type")
	_ = fleetAddCmd.MarkFlagRequired("number")
	fleetCmd.AddCommand(fleetAddCmd, fleetListCmd, fleetAssignCmd, fleetDeleteCmd)

	staffAddCmd.Flags().StringVar(&staffOpts.name, "name", "", "staff name")
	staffAddCmd.Flags().StringVar(&staffOpts.role, "role", "Agent", "Manager, Driver, Agent or Sorter")
	staffAddCmd.Flags().StringVar(&staffOpts.branch, "branch", "", "branch id")
	staffAddCmd.Flags().StringVar(&staffOpts.phone, "phone", "", "phone number")
	_ = staffAddCmd.MarkFlagRequired("name")
	staffCmd.AddCommand(staffAddCmd, staffListCmd, staffDeleteCmd)
}
