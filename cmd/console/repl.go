package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
)

// pageTimeout bounds every surface's network work; navigating to the
// next command abandons the previous page's context.
const pageTimeout = 30 * time.Second

// Console is the interactive client. Each command is one "page":
// guard first, fetch second, render last.
type Console struct {
	Auth      *app.AuthService
	Catalog   *app.CatalogService
	Bookings  *app.BookingService
	Admin     *app.AdminService
	Dashboard *app.DashboardService
	Uploads   *app.UploadPipeline

	In  io.Reader
	Out io.Writer
}

func (c *Console) Run() error {
	sc := bufio.NewScanner(c.In)
	c.printf("hotel-manager console. Type 'help' for commands.\n")
	for {
		c.printf("> ")
		if !sc.Scan() {
			return sc.Err()
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		c.dispatch(sc, args)
	}
}

func (c *Console) dispatch(sc *bufio.Scanner, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), pageTimeout)
	defer cancel()

	switch args[0] {
	case "help":
		c.printHelp()
	case "login":
		c.cmdLogin(ctx, args[1:])
	case "register":
		c.cmdRegister(ctx, args[1:])
	case "logout":
		if err := c.Auth.Logout(ctx); err != nil {
			c.fail(err)
			return
		}
		c.printf("session cleared\n")
	case "whoami":
		id, ok := c.session(ctx)
		if !ok {
			c.printf("not logged in\n")
			return
		}
		c.printf("%s <%s> role=%s\n", id.DisplayName, id.Email, id.Role)
	case "dashboard":
		c.cmdDashboard(ctx)
	case "search":
		c.cmdSearch(ctx, args[1:])
	case "hotel":
		c.cmdHotel(ctx, args[1:])
	case "bookings":
		c.cmdBookings(ctx)
	case "admin":
		c.cmdAdmin(ctx, sc, args[1:])
	default:
		c.printf("unknown command %q; try 'help'\n", args[0])
	}
}

func (c *Console) printHelp() {
	c.printf(`commands:
  login <email> <password>
  register <email> <password> <first> <last> [phone]
  logout | whoami
  dashboard
  search <city> <checkin> <checkout> [guests]
  hotel <id>
  bookings
  admin list | admin create | admin edit <id> | admin delete <id>
  quit
`)
}

// session reads the cached identity; absent or unreadable means nil.
func (c *Console) session(ctx context.Context) (*domain.Identity, bool) {
	id, ok, err := c.Auth.Current(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &id, true
}

// enter runs the access guard for a surface. Returns the identity only
// when the surface may render; on denial, nothing has been fetched.
func (c *Console) enter(ctx context.Context, required app.RequiredRole) (*domain.Identity, bool) {
	id, _ := c.session(ctx)
	d := app.Authorize(required, id)
	if !d.Allowed {
		if d.Message != "" {
			c.printf("%s\n", d.Message)
		}
		c.printf("→ %s\n", d.Redirect)
		return nil, false
	}
	return id, true
}

func (c *Console) cmdLogin(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.printf("usage: login <email> <password>\n")
		return
	}
	id, err := c.Auth.Login(ctx, args[0], args[1])
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("welcome, %s\n→ %s\n", id.DisplayName, app.LandingPath(id))
}

func (c *Console) cmdRegister(ctx context.Context, args []string) {
	if len(args) < 4 {
		c.printf("usage: register <email> <password> <first> <last> [phone]\n")
		return
	}
	p := domain.RegisterProfile{
		Email:       args[0],
		Password:    args[1],
		FirstName:   args[2],
		LastName:    args[3],
		DateOfBirth: "1990-01-01T00:00:00Z",
	}
	if len(args) > 4 {
		p.Phone = args[4]
	}
	if err := c.Auth.Register(ctx, p); err != nil {
		c.fail(err)
		return
	}
	c.printf("registered; you can log in now\n")
}

func (c *Console) cmdDashboard(ctx context.Context) {
	id, ok := c.enter(ctx, app.RequireAny)
	if !ok {
		return
	}
	data, err := c.Dashboard.Load(ctx, id.Token)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("-- hotels (%d) --\n", len(data.Hotels))
	c.printHotels(data.Hotels)
	c.printf("-- my bookings (%d) --\n", len(data.Bookings))
	c.printBookings(data.Bookings)
}

func (c *Console) cmdSearch(ctx context.Context, args []string) {
	id, ok := c.enter(ctx, app.RequireAny)
	if !ok {
		return
	}
	if len(args) < 3 {
		c.printf("usage: search <city> <checkin> <checkout> [guests]\n")
		return
	}
	guests := 2
	if len(args) > 3 {
		guests, _ = strconv.Atoi(args[3])
	}
	criteria, err := domain.ParseCriteria(args[0], args[1], args[2], guests)
	if err != nil {
		c.fail(err)
		return
	}
	hotels, err := c.Catalog.Search(ctx, id.Token, criteria)
	if err != nil {
		c.fail(err)
		return
	}
	c.printHotels(hotels)
}

func (c *Console) cmdHotel(ctx context.Context, args []string) {
	id, ok := c.enter(ctx, app.RequireAny)
	if !ok {
		return
	}
	if len(args) != 1 {
		c.printf("usage: hotel <id>\n")
		return
	}
	h, err := c.Catalog.Get(ctx, id.Token, args[0])
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("%s — %s, %s\n  rating %.1f, %s %.0f–%.0f\n  %s\n",
		h.Name, h.City, h.Address,
		h.Rating, h.PriceRange.Currency, h.PriceRange.MinPrice, h.PriceRange.MaxPrice,
		h.Description)
	for i, p := range h.Photos {
		c.printf("  photo[%d] %s\n", i, p)
	}
}

func (c *Console) cmdBookings(ctx context.Context) {
	id, ok := c.enter(ctx, app.RequireAny)
	if !ok {
		return
	}
	views, err := c.Bookings.MyBookings(ctx, id.Token)
	if err != nil {
		c.fail(err)
		return
	}
	c.printBookings(views)
}

func (c *Console) cmdAdmin(ctx context.Context, sc *bufio.Scanner, args []string) {
	id, ok := c.enter(ctx, app.RequireAdmin)
	if !ok {
		return
	}
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		hotels, err := c.Catalog.List(ctx, id.Token)
		if err != nil {
			c.fail(err)
			return
		}
		c.printHotels(hotels)
	case "create":
		draft := domain.NewDraft()
		c.promptDraft(sc, &draft)
		c.promptImages(ctx, sc, id.Token, &draft)
		hid, err := c.Admin.CreateHotel(ctx, id.Token, draft)
		if err != nil {
			c.fail(err)
			return
		}
		c.printf("hotel created: %s\n", hid)
	case "edit":
		if len(args) != 2 {
			c.printf("usage: admin edit <id>\n")
			return
		}
		h, err := c.Catalog.Get(ctx, id.Token, args[1])
		if err != nil {
			c.fail(err)
			return
		}
		draft := domain.DraftFrom(h)
		c.promptDraft(sc, &draft)
		c.promptImages(ctx, sc, id.Token, &draft)
		if err := c.Admin.UpdateHotel(ctx, id.Token, args[1], draft); err != nil {
			c.fail(err)
			return
		}
		c.printf("hotel updated\n")
	case "delete":
		if len(args) != 2 {
			c.printf("usage: admin delete <id>\n")
			return
		}
		if err := c.Admin.DeleteHotel(ctx, id.Token, args[1]); err != nil {
			c.fail(err)
			return
		}
		c.printf("hotel deleted\n")
	default:
		c.printf("unknown admin command %q\n", args[0])
	}
}

// promptDraft edits the draft field by field; empty input keeps the
// current value.
func (c *Console) promptDraft(sc *bufio.Scanner, d *domain.HotelDraft) {
	d.Name = c.ask(sc, "name", d.Name)
	d.Description = c.ask(sc, "description", d.Description)
	d.City = c.ask(sc, "city", d.City)
	d.Address = c.ask(sc, "address", d.Address)
	d.Contact.Phone = c.ask(sc, "contact phone", d.Contact.Phone)
	d.Contact.Email = c.ask(sc, "contact email", d.Contact.Email)
	d.Contact.Website = c.ask(sc, "contact website", d.Contact.Website)
}

// promptImages drives the upload pipeline: one optional thumbnail, then
// any number of gallery files in one batch.
func (c *Console) promptImages(ctx context.Context, sc *bufio.Scanner, token string, d *domain.HotelDraft) {
	if path := c.ask(sc, "thumbnail file (blank to skip)", ""); path != "" {
		f, closeFn, err := openUpload(path)
		if err != nil {
			c.fail(err)
		} else {
			defer closeFn()
			if err := c.Uploads.UploadThumbnail(ctx, token, f, d); err != nil {
				c.fail(err)
			} else {
				c.printf("thumbnail: %s\n", d.Thumbnail)
			}
		}
	}
	paths := c.ask(sc, "image files, comma separated (blank to skip)", "")
	if paths == "" {
		return
	}
	var files []domain.UploadFile
	var closers []func()
	defer func() {
		for _, cl := range closers {
			cl()
		}
	}()
	for _, p := range strings.Split(paths, ",") {
		f, closeFn, err := openUpload(strings.TrimSpace(p))
		if err != nil {
			c.fail(err)
			return
		}
		closers = append(closers, closeFn)
		files = append(files, f)
	}
	if err := c.Uploads.AddImages(ctx, token, files, d); err != nil {
		c.fail(err)
		return
	}
	c.printf("%d images staged\n", len(files))
}

func (c *Console) ask(sc *bufio.Scanner, field, current string) string {
	if current != "" {
		c.printf("%s [%s]: ", field, current)
	} else {
		c.printf("%s: ", field)
	}
	if !sc.Scan() {
		return current
	}
	v := strings.TrimSpace(sc.Text())
	if v == "" {
		return current
	}
	return v
}

func (c *Console) printHotels(hotels []domain.HotelSummary) {
	if len(hotels) == 0 {
		c.printf("no hotels found\n")
		return
	}
	for _, h := range hotels {
		c.printf("  %-24s %-16s %s\n", h.ID, h.City, h.Name)
	}
}

func (c *Console) printBookings(views []app.BookingView) {
	if len(views) == 0 {
		c.printf("no bookings\n")
		return
	}
	for _, v := range views {
		c.printf("  %s  %s  %s → %s  [%s/%s]\n",
			v.Reference, v.HotelLabel(),
			v.CheckIn.Format(domain.DateLayout), v.CheckOut.Format(domain.DateLayout),
			v.Status.Label, v.Status.Severity)
	}
}

func (c *Console) fail(err error) {
	if domain.IsValidation(err) {
		c.printf("invalid: %v\n", err)
		return
	}
	c.printf("error: %v\n", err)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}

// openUpload stages a local file for the pipeline. Size comes from the
// filesystem so the batch pre-check runs before a single byte is sent.
func openUpload(path string) (domain.UploadFile, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.UploadFile{}, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return domain.UploadFile{}, nil, err
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return domain.UploadFile{
		Name:        filepath.Base(path),
		ContentType: ct,
		Size:        st.Size(),
		Body:        f,
	}, func() { f.Close() }, nil
}
