package roles_test

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"

  "github.com/go-resty/resty/v2"
  . "github.com/onsi/ginkgo/v2"
  . "github.com/onsi/gomega"

  "github.com/ushakovn/ticketry/internal/models"
  "github.com/ushakovn/ticketry/internal/provider/roles"
)

var _ = Describe("Client", func() {
  var (
    ctx      context.Context
    server   *httptest.Server
    client   *roles.Client
    requests []string
  )

  BeforeEach(func() {
    ctx = context.Background()
    requests = nil

    server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
      defer GinkgoRecover()

      requests = append(requests, r.URL.Path)

      grants := []models.RoleGrant{{
        ProjectId: "p1",
        Roles:     []string{"viewer", "contributor"},
      }}

      w.Header().Set("Content-Type", "application/json")
      Expect(json.NewEncoder(w).Encode(grants)).To(Succeed())
    }))

    var err error

    client, err = roles.NewClient(
      roles.Config{
        BaseURL: server.URL,
      },
      roles.Dependencies{
        Client: resty.New(),
      })

    Expect(err).NotTo(HaveOccurred())
  })

  AfterEach(func() {
    server.Close()
  })

  It("resolves grants for an identity on a project", func() {
    grants, err := client.ProjectRoles(ctx, "u1", "p1")

    Expect(err).NotTo(HaveOccurred())
    Expect(models.HasRole(grants, models.RoleContributor)).To(BeTrue())

    Expect(requests).To(Equal([]string{"/users/u1/projects/p1/roles"}))
  })

  It("serves repeated lookups for the same pair from the cache", func() {
    first, err := client.ProjectRoles(ctx, "u1", "p1")
    Expect(err).NotTo(HaveOccurred())

    second, err := client.ProjectRoles(ctx, "u1", "p1")
    Expect(err).NotTo(HaveOccurred())

    Expect(second).To(Equal(first))
    Expect(requests).To(HaveLen(1))
  })

  It("looks up distinct pairs separately", func() {
    _, err := client.ProjectRoles(ctx, "u1", "p1")
    Expect(err).NotTo(HaveOccurred())

    _, err = client.ProjectRoles(ctx, "u1", "p2")
    Expect(err).NotTo(HaveOccurred())

    Expect(requests).To(HaveLen(2))
  })

  It("hits the provider again after a forget", func() {
    _, err := client.ProjectRoles(ctx, "u1", "p1")
    Expect(err).NotTo(HaveOccurred())

    client.Forget("u1", "p1")

    _, err = client.ProjectRoles(ctx, "u1", "p1")
    Expect(err).NotTo(HaveOccurred())

    Expect(requests).To(HaveLen(2))
  })

  It("surfaces a provider error status", func() {
    server.Close()

    _, err := client.ProjectRoles(ctx, "u1", "p1")

    Expect(err).To(HaveOccurred())
  })
})
